package product

import (
	"context"
	"net/http"
	"time"

	"github.com/eskrenkovic/storefront-admin/internal/modules/core"
)

type UpdateProductCommand struct {
	ProductID   string
	ProductData Data
}

func (c UpdateProductCommand) Validate() error {
	return requireProductID(c.ProductID)
}

type UpdateProductHandler struct {
	repository Repository
	now        func() time.Time
}

func NewUpdateProductHandler(repository Repository, now func() time.Time) *UpdateProductHandler {
	if now == nil {
		now = time.Now
	}
	return &UpdateProductHandler{repository: repository, now: now}
}

func (h *UpdateProductHandler) Handle(ctx context.Context, request UpdateProductCommand) (Row, error) {
	data := make(Data, len(request.ProductData)+1)
	for k, v := range request.ProductData {
		data[k] = v
	}
	data[UpdatedAtField] = timestamp(h.now())

	row, err := h.repository.Update(ctx, request.ProductID, data)
	if err != nil {
		return nil, core.NewCommandError(http.StatusInternalServerError, err, core.WithReason("failed to update product"))
	}

	return row, nil
}
