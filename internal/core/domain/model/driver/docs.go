// Package driver holds the Driver aggregate: a verified rider who picks meals
// up from kitchens and drops them at customers.
//
// A driver is eligible for new work when it is active, available and
// verified. Its current load (non-terminal assignments) is derived by the
// assignment store and never kept on the aggregate; the aggregate only knows
// its maximum. Every successful selection stamps lastAssignedAt, which also
// bumps the optimistic version so two concurrent selections of the same driver
// cannot both commit.
package driver
