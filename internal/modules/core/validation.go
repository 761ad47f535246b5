package core

import (
	"context"
	"net/http"
	"strings"

	"github.com/eskrenkovic/mediator-go"
)

type Validator interface {
	Validate() error
}

type ValidationError struct {
	ValidationErrors []error
}

func (e ValidationError) Error() string {
	messages := make([]string, 0, len(e.ValidationErrors))
	for _, err := range e.ValidationErrors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

var _ mediator.PipelineBehavior = (*RequestValidationBehavior)(nil)

// RequestValidationBehavior rejects requests implementing Validator before
// they reach their handler. Rejections are answered with 500 like every
// other proxy failure.
type RequestValidationBehavior struct{}

func (b *RequestValidationBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	if request, ok := request.(Validator); ok {
		if err := request.Validate(); err != nil {
			return nil, NewCommandError(
				http.StatusInternalServerError,
				err,
				WithReason("request validation failed"),
			)
		}
	}

	return next(ctx, request)
}
