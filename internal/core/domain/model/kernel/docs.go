// Package kernel contains shared value objects used across aggregates:
// numeric entity identifiers, free-text addresses, and authenticated
// principals. All types are immutable value objects whose zero values are
// invalid and must be created through their factory functions.
package kernel
