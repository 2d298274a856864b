// Package kernel provides the value objects shared by every aggregate of the
// warehouse domain.
//
// The package includes:
//   - LineItem: a (product, quantity) pair used by orders, bundles, lots and locations
//   - Items: helpers over line item lists (totals, merging by product)
//   - NewReference: generated identifiers for records imported without one
package kernel
