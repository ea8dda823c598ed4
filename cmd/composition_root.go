package cmd

import (
	"context"

	"shop/internal/adapters/in/dispatch"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/sequencerepo"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/cache"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	orderCache cache.Cache
}

// NewCompositionRoot creates the object graph root.
func NewCompositionRoot(
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	orderCache cache.Cache,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		orderCache: orderCache,
	}
}

// NewGormDB opens the Postgres connection.
func NewGormDB(config Config) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
}

// MigrateDB creates or updates the database schema.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &sequencerepo.OrderSequenceDTO{})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

// CreateDispatcher wires all six wire commands into one dispatcher.
func (c *CompositionRoot) CreateDispatcher() *dispatch.Dispatcher {
	createOrder := c.CreateCreateOrderCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	updateOrderStatus := c.CreateUpdateOrderStatusCommandHandler()
	getOrder := c.CreateGetOrderQueryHandler()
	getUserOrders := c.CreateGetUserOrdersQueryHandler()
	getAllOrders := c.CreateGetAllOrdersQueryHandler()

	return dispatch.NewDispatcher(
		&createOrder,
		&cancelOrder,
		&updateOrderStatus,
		getOrder,
		getUserOrders,
		getAllOrders,
		c.orderCache,
	)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// NopOrderEventPublisher drops all events. Used when no broker is configured.
type NopOrderEventPublisher struct{}

func (NopOrderEventPublisher) OrderCreated(context.Context, *order.Order) {}

func (NopOrderEventPublisher) OrderStatusChanged(context.Context, *order.Order, order.Status) {}

func (NopOrderEventPublisher) OrderCancelled(context.Context, *order.Order) {}
