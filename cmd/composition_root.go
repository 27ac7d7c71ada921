package cmd

import (
	"github.com/vkotsiuba99/rust-example-app/internal/adapters/out/postgres"
	"github.com/vkotsiuba99/rust-example-app/internal/core/application/usecases/commands"
	"github.com/vkotsiuba99/rust-example-app/internal/core/application/usecases/queries"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f, kernel.NewNextIDProvider[customer.Customer]())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, kernel.NewNextIDProvider[order.Order]())
}

func (c *CompositionRoot) CreateAddOrUpdateProductCommandHandler() commands.AddOrUpdateProductCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrUpdateProductCommandHandler(f, kernel.NewNextIDProvider[order.LineItem]())
}

func (c *CompositionRoot) CreateSetProductCommandHandler() commands.SetProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetProductCommandHandler(f)
}

func (c *CompositionRoot) CreateSetProductTitleCommandHandler() commands.SetProductTitleCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetProductTitleCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOpenOrdersQueryHandler() queries.CountOpenOrdersQueryHandler {
	return queries.NewCountOpenOrdersQueryHandler(c.gormDB)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
