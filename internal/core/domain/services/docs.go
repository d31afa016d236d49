// Package services provides domain services that orchestrate business operations
// across the order and center aggregates.
//
// The package includes:
//   - SupportingCenters and CentersWithSpareLoad: the two-stage center eligibility filter
//   - AssignmentEngine: the greedy batch assignment of pending orders to centers
//
// The services are pure: they read and mutate the aggregates they are given and
// never touch storage. Persisting the outcome belongs to the application layer.
package services
