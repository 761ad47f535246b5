package product

import (
	"time"

	"github.com/eskrenkovic/mediator-go"
)

// RegisterHandlers binds the product commands and queries to repository.
// The mediator registry is process-wide, so this runs once per process.
func RegisterHandlers(repository Repository, now func() time.Time) error {
	err := mediator.RegisterRequestHandler[CreateProductCommand, Row](
		NewCreateProductHandler(repository),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[UpdateProductCommand, Row](
		NewUpdateProductHandler(repository, now),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[DeleteProductCommand, DeleteResult](
		NewDeleteProductHandler(repository),
	)
	if err != nil {
		return err
	}

	return mediator.RegisterRequestHandler[GetProductQuery, Row](
		NewGetProductQueryHandler(repository),
	)
}
