// Package services contains stateless domain services operating across
// aggregates: the kitchen transition policy that decides which action a cook
// may take on an order, and the billing calculator that prices an order
// against the product catalog.
package services
