// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - AssignmentArbiter: resolves concurrent claim, assignment, and
//     completion attempts between riders and orders
//
// Domain services coordinate between aggregates, implementing logic that
// does not naturally belong to a single aggregate root.
package services
