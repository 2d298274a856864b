// Package order provides the Order aggregate for sales and purchases handled
// by the warehouse, together with its bundles and fulfilment lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning lines, destination, bundles and the
//     packing-list lock
//   - Bundle: a numbered packing unit, loaded in reverse order of creation
//   - Status: a state machine for the fulfilment workflow
//
// Key business rules:
//   - An order cannot be invoiced until its packing list is validated
//   - The packing-list lock never reverts once set
//   - Bundles are numbered 1..n in creation order and are frozen by the lock
//   - Customer compliance specs produce warnings, not hard failures
package order
