package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

type DataResponse struct {
	Data interface{} `json:"data"`
}

type ErrorDetail struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func RequestBody[TRequest any](r *http.Request) (TRequest, error) {
	var request TRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		if err == io.EOF {
			return request, fmt.Errorf("request body is empty")
		}
		return request, fmt.Errorf("invalid request body: %w", err)
	}
	return request, nil
}

type ResponseOption func(http.ResponseWriter, *http.Request)

func WithHeader(header, value string) ResponseOption {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add(header, value)
	}
}

func WriteOK(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusOK, body)
}

// WriteData answers with the {"data": ...} envelope.
func WriteData(w http.ResponseWriter, r *http.Request, data interface{}) {
	WriteOK(w, r, DataResponse{Data: data})
}

func WriteTooManyRequests(w http.ResponseWriter, r *http.Request, err error) {
	WriteResponse(w, r, http.StatusTooManyRequests, errorResponse(err), WithHeader("Retry-After", "1"))
}

func WriteInternalServerError(w http.ResponseWriter, r *http.Request, err error) {
	WriteResponse(w, r, http.StatusInternalServerError, errorResponse(err))
}

// WriteCommandError answers with the status carried by err (500 unless it is
// a CommandError saying otherwise) and the {"error": {"message": ...}} body.
func WriteCommandError(w http.ResponseWriter, r *http.Request, err error, opts ...ResponseOption) {
	WriteResponse(w, r, StatusCode(err), errorResponse(err), opts...)
}

func WriteResponse(
	w http.ResponseWriter,
	r *http.Request,
	statusCode int,
	body interface{},
	opts ...ResponseOption,
) {
	for _, opt := range opts {
		opt(w, r)
	}
	if body != nil {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(statusCode)
	writeBodyIfPresent(r.Context(), w, body)
}

func errorResponse(err error) ErrorResponse {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	return ErrorResponse{Error: ErrorDetail{Message: message}}
}

func writeBodyIfPresent(ctx context.Context, w http.ResponseWriter, body interface{}) {
	if body == nil {
		return
	}

	responseBytes, err := json.Marshal(body)
	if err != nil {
		LogError(ctx, "failed to serialize response", zap.Error(err))
		responseBytes, _ = json.Marshal(errorResponse(err))
	}

	if _, err := w.Write(responseBytes); err != nil {
		LogError(ctx, "failed to write response", zap.Error(err))
	}
}
