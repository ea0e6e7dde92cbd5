// Package types provides shared type definitions for the QBoard backend.
//
// This package defines the domain entities persisted by the storage layer
// (Product, Order, OrderItem, User, Employee) and the typed errors raised by
// the order/inventory engine.
//
// # Core Types
//
// Product carries the two fields the inventory engine cares about, a price
// and a stock counter:
//
//	product := &types.Product{
//	    Name:     "Mechanical Keyboard",
//	    Category: "electronics",
//	    Price:    decimal.NewFromFloat(79.99),
//	    Stock:    25,
//	}
//
// Order is the aggregate root: a header plus its line items. TotalAmount is
// derived from the items and is never set directly by callers:
//
//	order := &types.Order{
//	    UserID: userID,
//	    Status: types.OrderPending,
//	    Items:  []types.OrderItem{{ProductID: product.ID, Quantity: 3}},
//	}
//
// # Errors
//
// The engine reports failures through typed errors so the API layer can map
// them to responses without string matching:
//
//	var insuff *types.InsufficientStockError
//	if errors.As(err, &insuff) {
//	    // insuff.Available, insuff.Requested
//	}
package types
