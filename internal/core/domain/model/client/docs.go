// Package client contains the Client aggregate: registration profile,
// login credentials, and proof-of-identity artifact references.
package client
