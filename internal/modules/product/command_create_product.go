package product

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/storefront-admin/internal/modules/core"
)

type CreateProductCommand struct {
	ProductData Data
}

type CreateProductHandler struct {
	repository Repository
}

func NewCreateProductHandler(repository Repository) *CreateProductHandler {
	return &CreateProductHandler{repository}
}

func (h *CreateProductHandler) Handle(ctx context.Context, request CreateProductCommand) (Row, error) {
	row, err := h.repository.Insert(ctx, request.ProductData)
	if err != nil {
		return nil, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to insert product"))
	}

	return row, nil
}
