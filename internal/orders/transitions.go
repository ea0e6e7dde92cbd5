package orders

import "github.com/RahatGithub/QBoard/pkg/types"

// stockEffect is the inventory action tied to a status transition
type stockEffect int

const (
	effectNone stockEffect = iota
	effectReserve
	effectRelease
)

// transition is one (from, to) status pair
type transition struct {
	from, to types.OrderStatus
}

// transitionEffects is the closed transition table. Same-status updates are
// permitted with no stock effect; pairs absent from the table are rejected.
//
// Note the asymmetry around cancellation: completed -> cancelled releases
// the items, but cancelled -> completed performs no reserve, so an order
// re-completed after cancellation holds no stock claim.
var transitionEffects = map[transition]stockEffect{
	{types.OrderPending, types.OrderPending}:     effectNone,
	{types.OrderPending, types.OrderCompleted}:   effectNone,
	{types.OrderPending, types.OrderCancelled}:   effectRelease,
	{types.OrderCompleted, types.OrderCompleted}: effectNone,
	{types.OrderCompleted, types.OrderCancelled}: effectRelease,
	{types.OrderCancelled, types.OrderCancelled}: effectNone,
	{types.OrderCancelled, types.OrderPending}:   effectReserve,
	{types.OrderCancelled, types.OrderCompleted}: effectNone,
}

// effectFor looks up the stock effect for a status change
func effectFor(from, to types.OrderStatus) (stockEffect, bool) {
	effect, ok := transitionEffects[transition{from: from, to: to}]
	return effect, ok
}
