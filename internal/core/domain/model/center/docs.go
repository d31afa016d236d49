// Package center provides the logistics Center aggregate: a named warehouse at a
// fixed position that accepts orders of certain sizes up to a maximum load.
//
// The package includes:
//   - Center: the aggregate root holding capacity, status and load
//   - Status: the operational status (AVAILABLE or OCCUPIED)
//   - Patch: a partial update applied by registration updates
//
// Key business rules:
//   - capacity is a non-empty subset of B, M, S
//   - 0 <= currentLoad <= maxCapacity at all times
//   - only AVAILABLE centers take part in batch assignment
//   - TakeOrder increments the load by one and fails once the center is full
package center
