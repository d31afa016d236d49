// Package kernel provides the value objects shared by the order and center
// aggregates of the dispatch service.
//
// The package includes:
//   - ID: a storage-assigned identity; ascending IDs follow creation order
//   - Coordinates: a validated latitude/longitude pair with great-circle distance
//   - Size: the size class of an order (S, M, B)
//   - Capacity: the non-empty set of sizes a logistics center accepts
//
// All value objects are immutable and reject their zero value where it is not
// meaningful, so aggregates built from them are always in a valid state.
package kernel
