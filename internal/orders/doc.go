// Package orders implements the order aggregate service.
//
// An order is a header (owner, status, date, derived total) plus a set of
// line items. The service owns the order lifecycle:
//
//   - creation: validates every line against current stock before anything
//     is persisted, reserves stock when the order starts pending, and
//     derives the total from the line items
//   - status changes: checked against an explicit transition table that maps
//     each (from, to) pair to its stock effect; transitions missing from the
//     table are rejected
//   - item replacement: the old set is deleted and the new set inserted,
//     with stock released and re-reserved as the table and resulting status
//     dictate
//
// Every mutation runs inside one storage transaction, so a failure on any
// line item rolls back the whole operation: no partial orders, no partial
// stock movements.
//
// Orders in a terminal status (completed, cancelled) reject item replacement
// and field edits outright. Status-only changes out of a terminal state are
// permitted exactly when the transition table lists them.
package orders
