package core

import (
	"context"
	"errors"

	"github.com/eskrenkovic/mediator-go"

	"go.uber.org/zap"
)

func correlationFields(ctx context.Context) []zap.Field {
	var logFields []zap.Field

	correlationID := ctx.Value(CorrelationIDContextKey)
	if correlationID != nil && correlationID != "" {
		logFields = append(logFields, zap.Any("correlation_id", correlationID))
	}

	return logFields
}

// LogError writes through the global zap logger, tagged with the request's
// correlation id when there is one.
func LogError(ctx context.Context, msg string, fields ...zap.Field) {
	zap.L().Error(msg, append(correlationFields(ctx), fields...)...)
}

var _ mediator.PipelineBehavior = (*RequestLoggingBehavior)(nil)

type RequestLoggingBehavior struct {
	Logger *zap.Logger
}

func (b *RequestLoggingBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	logFields := correlationFields(ctx)

	if request != nil {
		logFields = append(logFields, zap.Any("request_body", request))
	}

	b.Logger.Info("processing request", logFields...)

	return next(ctx, request)
}

var _ mediator.PipelineBehavior = (*HandlerErrorLoggingBehavior)(nil)

type HandlerErrorLoggingBehavior struct {
	Logger *zap.Logger
}

func (b *HandlerErrorLoggingBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	response, err := next(ctx, request)
	if err != nil {
		logFields := append(correlationFields(ctx), zap.Error(err))

		var commandErr CommandError
		if errors.As(err, &commandErr) && commandErr.Reason != nil {
			logFields = append(logFields, zap.String("reason", *commandErr.Reason))
		}

		b.Logger.Error("handler returned error", logFields...)
	}

	return response, err
}
