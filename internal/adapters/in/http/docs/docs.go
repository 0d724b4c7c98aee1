// Package docs registers the OpenAPI description of the HTTP API with swag,
// where echo-swagger reads it from.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/orders": {
			"post": {
				"tags": [
					"orders"
				],
				"summary": "Create an order",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateOrderRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/OrderResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{order_id}/transitions": {
			"post": {
				"tags": [
					"orders"
				],
				"summary": "Move an order through its lifecycle",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "order_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Order id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/TransitionOrderRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/OrderResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/orders/{order_id}/driver-assignment": {
			"post": {
				"tags": [
					"assignments"
				],
				"summary": "Dispatch a driver for an order",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "order_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Order id"
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/AssignmentResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/chefs": {
			"post": {
				"tags": [
					"chefs"
				],
				"summary": "Register a chef",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/RegisterChefRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/ChefResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/subscriptions": {
			"post": {
				"tags": [
					"subscriptions"
				],
				"summary": "Create a subscription",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateSubscriptionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/SubscriptionResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/subscriptions/{subscription_id}/chef": {
			"post": {
				"tags": [
					"subscriptions"
				],
				"summary": "Delegate a subscription to a chef",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "subscription_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Subscription id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/AssignChefRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/AssignChefResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/subscriptions/{subscription_id}/timeline": {
			"get": {
				"tags": [
					"subscriptions"
				],
				"summary": "Derived delegation status and meal timeline",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "subscription_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Subscription id"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/TimelineResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/subscriptions/{subscription_id}/meals/ready": {
			"post": {
				"tags": [
					"subscriptions"
				],
				"summary": "Mark a meal ready",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "subscription_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Subscription id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/SlotRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/MealStatusResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/subscriptions/{subscription_id}/meals/delivered": {
			"post": {
				"tags": [
					"subscriptions"
				],
				"summary": "Mark a meal delivered",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "subscription_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Subscription id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/SlotRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/MealStatusResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/subscriptions/{subscription_id}/driver-assignment": {
			"post": {
				"tags": [
					"assignments"
				],
				"summary": "Dispatch a driver for one subscription day",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "subscription_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Subscription id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/SlotRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/AssignmentResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/subscriptions/{subscription_id}/reassignments": {
			"post": {
				"tags": [
					"reassignments"
				],
				"summary": "Request a chef reassignment",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "subscription_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Subscription id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/RequestReassignmentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/IDResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/reassignments": {
			"get": {
				"tags": [
					"reassignments"
				],
				"summary": "Pending requests by priority then age",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"description": "Maximum number of requests, 1 to 200"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/ReassignmentResponse"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/reassignments/{request_id}/resolution": {
			"post": {
				"tags": [
					"reassignments"
				],
				"summary": "Approve or reject a request",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Reassignment request id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ResolveReassignmentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/ReassignmentResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/reassignments/auto-approve": {
			"post": {
				"tags": [
					"reassignments"
				],
				"summary": "Approve aged low-priority requests",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/AutoApproveResponse"
						}
					}
				}
			}
		},
		"/drivers": {
			"post": {
				"tags": [
					"drivers"
				],
				"summary": "Register a driver",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/RegisterDriverRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/DriverResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/drivers/{driver_id}/clustering-advice": {
			"get": {
				"tags": [
					"drivers"
				],
				"summary": "Route clustering opportunities",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "driver_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Driver id"
					},
					{
						"name": "from",
						"in": "query",
						"type": "string",
						"description": "Window start, RFC 3339",
						"format": "date-time"
					},
					{
						"name": "to",
						"in": "query",
						"type": "string",
						"description": "Window end, RFC 3339",
						"format": "date-time"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/ClusterAdvice"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/drivers/earnings/reset": {
			"post": {
				"tags": [
					"drivers"
				],
				"summary": "Zero every driver's daily earnings",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/ResetEarningsResponse"
						}
					}
				}
			}
		},
		"/assignments/{assignment_id}/pickup": {
			"post": {
				"tags": [
					"assignments"
				],
				"summary": "Confirm pickup",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "assignment_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Assignment id"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/AssignmentResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/assignments/{assignment_id}/delivery": {
			"post": {
				"tags": [
					"assignments"
				],
				"summary": "Confirm delivery with the customer's code",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "assignment_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Assignment id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ConfirmDeliveryRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/AssignmentResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/assignments/{assignment_id}/cancellation": {
			"post": {
				"tags": [
					"assignments"
				],
				"summary": "Cancel an assignment",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "assignment_id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid",
						"description": "Assignment id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CancelAssignmentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/AssignmentResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/devices": {
			"post": {
				"tags": [
					"devices"
				],
				"summary": "Register a push token",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/RegisterDeviceRequest"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"Error": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"IDResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				}
			}
		},
		"AddressRequest": {
			"type": "object",
			"properties": {
				"street": {
					"type": "string"
				},
				"area": {
					"type": "string"
				},
				"lat": {
					"type": "number"
				},
				"lng": {
					"type": "number"
				}
			},
			"required": [
				"street",
				"area"
			]
		},
		"SlotRequest": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string",
					"format": "date"
				},
				"mealTime": {
					"type": "string",
					"enum": [
						"breakfast",
						"lunch",
						"dinner"
					]
				}
			},
			"required": [
				"date",
				"mealTime"
			]
		},
		"CreateOrderRequest": {
			"type": "object",
			"properties": {
				"orderId": {
					"type": "string",
					"format": "uuid"
				},
				"customerId": {
					"type": "string",
					"format": "uuid"
				},
				"address": {
					"$ref": "#/definitions/AddressRequest"
				},
				"chefId": {
					"type": "string",
					"format": "uuid"
				},
				"subscriptionId": {
					"type": "string",
					"format": "uuid"
				},
				"date": {
					"type": "string",
					"format": "date"
				},
				"mealTime": {
					"type": "string",
					"enum": [
						"breakfast",
						"lunch",
						"dinner"
					]
				}
			},
			"required": [
				"customerId",
				"address"
			]
		},
		"TransitionOrderRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"Confirmed",
						"InProgress",
						"Completed",
						"Delivered",
						"Cancelled"
					]
				},
				"reason": {
					"type": "string"
				}
			},
			"required": [
				"status"
			]
		},
		"RegisterChefRequest": {
			"type": "object",
			"properties": {
				"chefId": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"maxDailyCapacity": {
					"type": "integer"
				},
				"kitchen": {
					"$ref": "#/definitions/AddressRequest"
				}
			},
			"required": [
				"name",
				"maxDailyCapacity",
				"kitchen"
			]
		},
		"CreateSubscriptionRequest": {
			"type": "object",
			"properties": {
				"subscriptionId": {
					"type": "string",
					"format": "uuid"
				},
				"customerId": {
					"type": "string",
					"format": "uuid"
				},
				"startDate": {
					"type": "string",
					"format": "date"
				},
				"durationWeeks": {
					"type": "integer"
				}
			},
			"required": [
				"customerId",
				"startDate",
				"durationWeeks"
			]
		},
		"AssignChefRequest": {
			"type": "object",
			"properties": {
				"chefId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"chefId"
			]
		},
		"RequestReassignmentRequest": {
			"type": "object",
			"properties": {
				"reason": {
					"type": "string"
				},
				"priority": {
					"type": "string",
					"enum": [
						"low",
						"normal",
						"high",
						"urgent"
					]
				},
				"requestedBy": {
					"type": "string",
					"format": "uuid"
				},
				"requestedChefId": {
					"type": "string",
					"format": "uuid"
				}
			},
			"required": [
				"reason",
				"requestedBy"
			]
		},
		"ResolveReassignmentRequest": {
			"type": "object",
			"properties": {
				"decision": {
					"type": "string",
					"enum": [
						"approve",
						"reject"
					]
				},
				"newChefId": {
					"type": "string",
					"format": "uuid"
				},
				"note": {
					"type": "string"
				}
			},
			"required": [
				"decision"
			]
		},
		"RegisterDriverRequest": {
			"type": "object",
			"properties": {
				"driverId": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"maxCapacity": {
					"type": "integer"
				},
				"lat": {
					"type": "number"
				},
				"lng": {
					"type": "number"
				},
				"serviceAreas": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"verified": {
					"type": "boolean"
				}
			},
			"required": [
				"name",
				"maxCapacity"
			]
		},
		"ConfirmDeliveryRequest": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				}
			}
		},
		"CancelAssignmentRequest": {
			"type": "object",
			"properties": {
				"reason": {
					"type": "string"
				}
			}
		},
		"RegisterDeviceRequest": {
			"type": "object",
			"properties": {
				"role": {
					"type": "string",
					"enum": [
						"customer",
						"chef",
						"admin"
					]
				},
				"userId": {
					"type": "string",
					"format": "uuid"
				},
				"token": {
					"type": "string"
				}
			},
			"required": [
				"role",
				"userId",
				"token"
			]
		},
		"OrderResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"customerId": {
					"type": "string",
					"format": "uuid"
				},
				"subscriptionId": {
					"type": "string",
					"format": "uuid"
				},
				"date": {
					"type": "string",
					"format": "date"
				},
				"mealTime": {
					"type": "string"
				},
				"chefId": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string"
				},
				"paymentStatus": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"deliveredAt": {
					"type": "string",
					"format": "date-time"
				},
				"cancelledAt": {
					"type": "string",
					"format": "date-time"
				},
				"cancellationReason": {
					"type": "string"
				}
			}
		},
		"ChefResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"active": {
					"type": "boolean"
				},
				"maxDailyCapacity": {
					"type": "integer"
				},
				"kitchenArea": {
					"type": "string"
				}
			}
		},
		"SubscriptionResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"customerId": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string"
				},
				"startDate": {
					"type": "string",
					"format": "date"
				},
				"endDate": {
					"type": "string",
					"format": "date"
				},
				"durationWeeks": {
					"type": "integer"
				}
			}
		},
		"AssignChefResponse": {
			"type": "object",
			"properties": {
				"subscriptionId": {
					"type": "string",
					"format": "uuid"
				},
				"chefId": {
					"type": "string",
					"format": "uuid"
				},
				"updatedOrders": {
					"type": "integer"
				}
			}
		},
		"MealStatusResponse": {
			"type": "object",
			"properties": {
				"subscriptionId": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"TimelineEntry": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string",
					"format": "date"
				},
				"mealTime": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"TimelineResponse": {
			"type": "object",
			"properties": {
				"subscriptionId": {
					"type": "string",
					"format": "uuid"
				},
				"subscriptionStatus": {
					"type": "string"
				},
				"chefId": {
					"type": "string",
					"format": "uuid"
				},
				"driverId": {
					"type": "string",
					"format": "uuid"
				},
				"status": {
					"type": "string",
					"enum": [
						"Not Assigned",
						"Assigned",
						"In Progress",
						"Ready",
						"Delivered"
					]
				},
				"entries": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/TimelineEntry"
					}
				}
			}
		},
		"ReassignmentResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"subscriptionId": {
					"type": "string",
					"format": "uuid"
				},
				"currentChefId": {
					"type": "string",
					"format": "uuid"
				},
				"requestedChefId": {
					"type": "string",
					"format": "uuid"
				},
				"priority": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"resolutionNote": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"resolvedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"AutoApproveResponse": {
			"type": "object",
			"properties": {
				"approved": {
					"type": "integer"
				},
				"skipped": {
					"type": "integer"
				},
				"failed": {
					"type": "integer"
				}
			}
		},
		"DriverResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"maxCapacity": {
					"type": "integer"
				},
				"serviceAreas": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"eligible": {
					"type": "boolean"
				},
				"dailyEarnings": {
					"type": "string"
				},
				"totalEarnings": {
					"type": "string"
				},
				"completedDeliveries": {
					"type": "integer"
				}
			}
		},
		"ResetEarningsResponse": {
			"type": "object",
			"properties": {
				"drivers": {
					"type": "integer"
				}
			}
		},
		"AssignmentResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"driverId": {
					"type": "string",
					"format": "uuid"
				},
				"target": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"estimatedPickupAt": {
					"type": "string",
					"format": "date-time"
				},
				"estimatedDeliveryAt": {
					"type": "string",
					"format": "date-time"
				},
				"assignedAt": {
					"type": "string",
					"format": "date-time"
				},
				"pickedUpAt": {
					"type": "string",
					"format": "date-time"
				},
				"deliveredAt": {
					"type": "string",
					"format": "date-time"
				},
				"cancelledAt": {
					"type": "string",
					"format": "date-time"
				},
				"earnings": {
					"type": "string"
				},
				"confirmationCode": {
					"type": "string"
				}
			}
		},
		"ClusterAdvice": {
			"type": "object",
			"properties": {
				"kind": {
					"type": "string",
					"enum": [
						"area",
						"time_slot_area"
					]
				},
				"key": {
					"type": "string"
				},
				"area": {
					"type": "string"
				},
				"timeSlot": {
					"type": "string"
				},
				"deliveries": {
					"type": "integer"
				},
				"assignmentIds": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"totalDurationSeconds": {
					"type": "integer"
				},
				"estimatedSavingSeconds": {
					"type": "integer"
				}
			}
		}
	}
}`

// SwaggerInfo holds the exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "mealflow API",
	Description:      "Orders, chef delegation, driver dispatch and delivery confirmation for meal subscriptions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
