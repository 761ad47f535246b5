package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test_Handler_Error_Logging_Includes_Reason(t *testing.T) {
	// Arrange
	observed, logs := observer.New(zapcore.ErrorLevel)
	behavior := HandlerErrorLoggingBehavior{Logger: zap.New(observed)}
	next := func(ctx context.Context, request interface{}) (interface{}, error) {
		return nil, NewCommandError(500, errors.New("connection refused"), WithReason("failed to update product"))
	}
	ctx := context.WithValue(context.Background(), CorrelationIDContextKey, "abc")

	// Act
	_, err := behavior.Handle(ctx, struct{}{}, next)

	// Assert
	require.EqualError(t, err, "connection refused")
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	require.Equal(t, "failed to update product", fields["reason"])
	require.Equal(t, "abc", fields["correlation_id"])
	require.Equal(t, "connection refused", fields["error"])
}

func Test_Handler_Error_Logging_Is_Silent_On_Success(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	behavior := HandlerErrorLoggingBehavior{Logger: zap.New(observed)}
	next := func(ctx context.Context, request interface{}) (interface{}, error) {
		return "ok", nil
	}

	_, err := behavior.Handle(context.Background(), struct{}{}, next)

	require.NoError(t, err)
	require.Zero(t, logs.Len())
}
