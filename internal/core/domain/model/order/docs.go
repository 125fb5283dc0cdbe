// Package order contains the Order aggregate and its value objects: the
// lifecycle status machine (Pending -> Accepted -> Completed), the tagged
// origin variant (client order vs. manual admin entry), and proof-of-delivery
// artifact references. Every state-transition guard of the ledger lives in
// this package; use cases and adapters never mutate order state directly.
package order
