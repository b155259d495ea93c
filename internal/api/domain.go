package api

import (
	"github.com/forestscape/soldmis/internal/payments"
	"github.com/forestscape/soldmis/internal/sales"
	"github.com/forestscape/soldmis/pkg/routes"
)

// Domain holds the initialized domain systems.
type Domain struct {
	Sales    sales.System
	Payments payments.System
}

// NewDomain initializes the domain systems. Payments comes first since the
// sales bookings report consumes its period totals.
func NewDomain(runtime *Runtime) *Domain {
	paymentSystem := payments.NewRepository(runtime.DB, runtime.Logger)
	saleSystem := sales.NewRepository(runtime.DB, paymentSystem, runtime.Logger, runtime.Pages)

	return &Domain{
		Sales:    saleSystem,
		Payments: paymentSystem,
	}
}

// Groups returns the route groups of all domain systems in registration order.
func (d *Domain) Groups() []routes.Group {
	return []routes.Group{
		d.Sales.Handler().Routes(),
		d.Payments.Handler().Routes(),
	}
}
