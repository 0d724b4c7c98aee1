// Package order holds the Order aggregate and its status state machine.
//
// Status flow:
//
//	Pending ──> Confirmed ──> InProgress ──> Completed ──> Delivered
//	   │            │              │              │
//	   └────────────┴──────────────┴──────────────┴──> Cancelled
//
// Any pair not drawn above is forbidden: backward moves, self moves, skipped
// stages and every exit from Delivered or Cancelled. Each accepted transition
// stamps its own timestamp; deliveredAt is set exactly when the order is
// Delivered and cancelledAt exactly when it is Cancelled.
package order
