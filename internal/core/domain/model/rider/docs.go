// Package rider contains the Rider aggregate: directory identity, login
// credentials (bcrypt hash), and the monotonic credit accumulator.
package rider
