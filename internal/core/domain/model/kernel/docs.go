// Package kernel holds the value objects shared by every aggregate of the
// meal delivery domain: identifiers, geographic locations, addresses, meal
// slots and the optimistic version counter.
//
// Value objects are immutable and validated on construction. The zero value
// of each type fails Validate, so aggregates can detect fields that were never
// set through a constructor.
package kernel
