// Package order provides the Order aggregate of the dispatch service.
//
// The package includes:
//   - Order: a customer order waiting for, or bound to, a logistics center
//   - Status: the order lifecycle, PENDING -> ASSIGNED
//
// Key business rules:
//   - Orders are created in PENDING status without an assigned center
//   - An order is assigned exactly once; ASSIGNED is terminal
//   - An ASSIGNED order always names its center, a PENDING one never does
package order
