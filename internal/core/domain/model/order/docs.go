// Package order provides domain entities and business logic for purchase
// order management in the shop. It implements the Order aggregate root with
// lifecycle management and fulfillment state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, snapshots, and lifecycle
//   - Status: A state machine that enforces valid fulfillment status transitions
//   - Number: The human-readable, day-scoped sequential order identifier
//   - Item, Pricing, Address: Immutable value objects captured at creation
//
// Key business rules:
//   - Orders start in pending status and follow the workflow
//     pending -> processing -> shipped -> delivered, with cancellation
//     branches from pending and processing
//   - Delivered and cancelled are terminal states
//   - Items, pricing, and shipping address are snapshots; they never change
//     after creation even if the catalog or the customer's profile does
//   - total = subtotal + tax + shippingCost is enforced at construction
//   - Fulfillment timestamps are stamped exactly once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
