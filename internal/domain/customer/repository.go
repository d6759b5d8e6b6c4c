package customer

import (
	"context"
)

type CustomerRepository interface {
	// FindByID reports found == false, with a nil error, when no row has the
	// given id.
	FindByID(ctx context.Context, customerID int64) (customer *Customer, found bool, err error)

	// Save inserts the customer when its ID is zero and updates the row with
	// that ID otherwise. On insert the store-assigned ID is written back.
	Save(ctx context.Context, customer *Customer) error

	Delete(ctx context.Context, customer *Customer) error
}
