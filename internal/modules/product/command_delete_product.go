package product

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/storefront-admin/internal/modules/core"
)

type DeleteProductCommand struct {
	ProductID string
}

func (c DeleteProductCommand) Validate() error {
	return requireProductID(c.ProductID)
}

type DeleteProductHandler struct {
	repository Repository
}

func NewDeleteProductHandler(repository Repository) *DeleteProductHandler {
	return &DeleteProductHandler{repository}
}

func (h *DeleteProductHandler) Handle(ctx context.Context, request DeleteProductCommand) (DeleteResult, error) {
	if err := h.repository.Delete(ctx, request.ProductID); err != nil {
		return DeleteResult{}, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to delete product"))
	}

	return DeleteResult{Success: true}, nil
}
