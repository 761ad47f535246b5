package product

import (
	"context"
	"errors"
	"net/http"

	"github.com/eskrenkovic/storefront-admin/internal/modules/core"
)

type GetProductQuery struct {
	ProductID string
}

type GetProductQueryHandler struct {
	repository Repository
}

func NewGetProductQueryHandler(repository Repository) *GetProductQueryHandler {
	return &GetProductQueryHandler{repository}
}

func (h *GetProductQueryHandler) Handle(ctx context.Context, request GetProductQuery) (Row, error) {
	product, err := h.repository.Load(ctx, request.ProductID)
	switch {
	case err != nil && errors.Is(err, ErrNotFound):
		return nil, core.NewCommandError(http.StatusNotFound, err)
	case err != nil:
		return nil, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to load product"))
	}

	return product, nil
}
