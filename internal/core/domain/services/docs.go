// Package services contains stateless domain services that work across
// aggregates: driver selection under capacity, confirmation codes, delivery
// estimates, earnings and route clustering advice.
//
// Services never touch storage. Callers load the aggregates and counts they
// need, pass them in and persist whatever the service changed.
package services
