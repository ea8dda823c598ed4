// Package dispatch routes command-style messages to application handlers.
// The shop gateway addresses this service with string command names and JSON
// payloads; both are a frozen wire contract, so the dispatcher preserves the
// exact names and shapes the gateway already sends.
package dispatch

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/cache"
	"shop/internal/pkg/errs"
)

// Wire command names. Frozen: the gateway and frontend bind to them.
const (
	CommandCreateOrder       = "create-order"
	CommandGetUserOrders     = "get-user-orders"
	CommandGetOrder          = "get-order"
	CommandCancelOrder       = "cancel-order"
	CommandGetAllOrders      = "get-all-orders"
	CommandUpdateOrderStatus = "update-order-status"
)

const orderCacheTTL = 5 * time.Minute

// Handler contracts, defined here so the dispatcher can be exercised with
// fakes and does not care how handlers are wired.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}

	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}

	GetUserOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetUserOrdersQuery) (queries.OrdersPageResponse, error)
	}

	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) (queries.OrdersPageResponse, error)
	}
)

// Dispatcher maps wire commands to application handlers. Single-order reads
// go through the cache; mutations invalidate the affected entry.
type Dispatcher struct {
	createOrder       CreateOrderHandler
	cancelOrder       CancelOrderHandler
	updateOrderStatus UpdateOrderStatusHandler
	getOrder          GetOrderHandler
	getUserOrders     GetUserOrdersHandler
	getAllOrders      GetAllOrdersHandler

	cache cache.Cache
}

// NewDispatcher creates a dispatcher over the six order operations.
func NewDispatcher(
	createOrder CreateOrderHandler,
	cancelOrder CancelOrderHandler,
	updateOrderStatus UpdateOrderStatusHandler,
	getOrder GetOrderHandler,
	getUserOrders GetUserOrdersHandler,
	getAllOrders GetAllOrdersHandler,
	orderCache cache.Cache,
) *Dispatcher {
	return &Dispatcher{
		createOrder:       createOrder,
		cancelOrder:       cancelOrder,
		updateOrderStatus: updateOrderStatus,
		getOrder:          getOrder,
		getUserOrders:     getUserOrders,
		getAllOrders:      getAllOrders,
		cache:             orderCache,
	}
}

// Dispatch executes one wire command against its handler and returns the
// JSON-serializable result.
func (d *Dispatcher) Dispatch(ctx context.Context, command string, payload []byte) (any, error) {
	switch command {
	case CommandCreateOrder:
		return d.handleCreateOrder(ctx, payload)
	case CommandGetUserOrders:
		return d.handleGetUserOrders(ctx, payload)
	case CommandGetOrder:
		return d.handleGetOrder(ctx, payload)
	case CommandCancelOrder:
		return d.handleCancelOrder(ctx, payload)
	case CommandGetAllOrders:
		return d.handleGetAllOrders(ctx, payload)
	case CommandUpdateOrderStatus:
		return d.handleUpdateOrderStatus(ctx, payload)
	default:
		return nil, errs.NewObjectNotFoundError("command", command)
	}
}

func (d *Dispatcher) handleCreateOrder(ctx context.Context, payload []byte) (any, error) {
	var req createOrderRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId", err)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, itemErr := order.NewItem(itemReq.ProductID, itemReq.Name, itemReq.Price, itemReq.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	pricing, err := order.NewPricing(req.Subtotal, req.Tax, req.ShippingCost, req.Total)
	if err != nil {
		return nil, err
	}

	addr := req.ShippingAddress
	address, err := order.NewAddress(
		addr.Name, addr.AddressLine1, addr.AddressLine2,
		addr.City, addr.State, addr.PostalCode, addr.Country, addr.Phone,
	)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewCreateOrderCommand(userID, items, pricing, address, req.PaymentID, req.Notes)
	if err != nil {
		return nil, err
	}

	created, err := d.createOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return toOrderResponse(created), nil
}

func (d *Dispatcher) handleGetOrder(ctx context.Context, payload []byte) (any, error) {
	var req getOrderRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId", err)
	}

	cacheKey := d.orderCacheKey(orderID, userID)
	if cached := d.cacheLookup(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return nil, err
	}

	response, err := d.getOrder.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	d.cacheStore(ctx, cacheKey, response)
	return response, nil
}

func (d *Dispatcher) handleGetUserOrders(ctx context.Context, payload []byte) (any, error) {
	var req getUserOrdersRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId", err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID, req.Status, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	return d.getUserOrders.Handle(ctx, query)
}

func (d *Dispatcher) handleGetAllOrders(ctx context.Context, payload []byte) (any, error) {
	var req getAllOrdersRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	query, err := queries.NewGetAllOrdersQuery(req.Status, req.UserID, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	return d.getAllOrders.Handle(ctx, query)
}

func (d *Dispatcher) handleCancelOrder(ctx context.Context, payload []byte) (any, error) {
	var req cancelOrderRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId", err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID, req.Reason)
	if err != nil {
		return nil, err
	}

	cancelled, err := d.cancelOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	d.cacheInvalidate(ctx, d.orderCacheKey(cancelled.ID(), cancelled.UserID()))
	return toOrderResponse(cancelled), nil
}

func (d *Dispatcher) handleUpdateOrderStatus(ctx context.Context, payload []byte) (any, error) {
	var req updateOrderStatusRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, req.TrackingNumber, req.Notes)
	if err != nil {
		return nil, err
	}

	updated, err := d.updateOrderStatus.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	d.cacheInvalidate(ctx, d.orderCacheKey(updated.ID(), updated.UserID()))
	return toOrderResponse(updated), nil
}

func (d *Dispatcher) orderCacheKey(orderID, userID kernel.UUID) string {
	return d.cache.GenerateKey(CommandGetOrder, orderID.String()+":"+userID.String())
}

// cacheLookup returns the cached order response, or nil on miss. Cache errors
// degrade to a miss.
func (d *Dispatcher) cacheLookup(ctx context.Context, key string) *queries.OrderResponse {
	raw, err := d.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("order cache read failed", "key", key, "error", err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var response queries.OrderResponse
	if err = json.Unmarshal([]byte(raw), &response); err != nil {
		slog.Warn("order cache entry malformed", "key", key, "error", err)
		return nil
	}
	return &response
}

func (d *Dispatcher) cacheStore(ctx context.Context, key string, response queries.OrderResponse) {
	raw, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err = d.cache.Set(ctx, key, string(raw), orderCacheTTL); err != nil {
		slog.Warn("order cache write failed", "key", key, "error", err)
	}
}

func (d *Dispatcher) cacheInvalidate(ctx context.Context, key string) {
	if err := d.cache.Delete(ctx, key); err != nil {
		slog.Warn("order cache invalidation failed", "key", key, "error", err)
	}
}
