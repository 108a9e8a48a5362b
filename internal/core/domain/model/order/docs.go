// Package order contains the order aggregate: one container per customer
// holding purchased lines. Each line references a product's inventory
// record, carries a quantity and a price snapshot, and moves through the
// Paid -> Cancelled state machine. Cancellation is one-way.
package order
