package product

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/storefront-admin/internal/metrics"
	"github.com/eskrenkovic/storefront-admin/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

// HandleProductProxy decodes an operation envelope and dispatches it to the
// matching command. Every failure is answered with 500 and the underlying
// message.
func HandleProductProxy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	envelope, err := core.RequestBody[Envelope](r)
	if err != nil {
		core.LogError(ctx, "failed to decode product envelope", zap.Error(err))
		core.WriteInternalServerError(w, r, err)
		return
	}

	result, err := dispatch(ctx, envelope)
	metrics.ProductOperations.WithLabelValues(methodLabel(envelope.Method), metrics.Outcome(err)).Inc()
	if err != nil {
		core.WriteInternalServerError(w, r, err)
		return
	}

	core.WriteData(w, r, result)
}

func dispatch(ctx context.Context, envelope Envelope) (interface{}, error) {
	switch envelope.Method {
	case MethodCreate:
		row, err := mediator.Send[CreateProductCommand, Row](
			ctx,
			CreateProductCommand{ProductData: envelope.ProductData},
		)
		if err != nil {
			return nil, err
		}
		return row, nil

	case MethodUpdate:
		row, err := mediator.Send[UpdateProductCommand, Row](
			ctx,
			UpdateProductCommand{ProductID: envelope.ProductID, ProductData: envelope.ProductData},
		)
		if err != nil {
			return nil, err
		}
		return row, nil

	case MethodDelete:
		result, err := mediator.Send[DeleteProductCommand, DeleteResult](
			ctx,
			DeleteProductCommand{ProductID: envelope.ProductID},
		)
		if err != nil {
			return nil, err
		}
		return result, nil

	default:
		err := errInvalidMethod(envelope.Method)
		core.LogError(ctx, "rejected product envelope", zap.Error(err))
		return nil, core.NewCommandError(http.StatusInternalServerError, err)
	}
}

func methodLabel(method Method) string {
	switch method {
	case MethodCreate, MethodUpdate, MethodDelete:
		return string(method)
	default:
		return "invalid"
	}
}

func HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	query := GetProductQuery{ProductID: chi.URLParam(r, "id")}

	product, err := mediator.Send[GetProductQuery, Row](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteData(w, r, product)
}
