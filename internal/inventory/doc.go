// Package inventory implements the stock reconciler for order mutations.
//
// The reconciler is the single authority for moving stock in or out of the
// catalog in response to order-level events. All stock effects are
// order-scoped atomic: callers pass a transaction-scoped storage, and a
// failure on any line leaves every product untouched once the transaction
// rolls back.
//
// Reserve validates the whole batch before applying any decrement
// (check-then-apply), so the error for an unsatisfiable batch reports the
// first insufficient line in submission order. The decrements themselves are
// conditional updates, which closes the race between the check and the apply
// under concurrent reservations.
//
// Release never fails on quantity grounds; restocking is always valid, and
// repeated lines for the same product accumulate.
package inventory
