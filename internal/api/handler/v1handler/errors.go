package v1handler

import (
	"context"
	"errors"
	"net/http"
	"shifts/pkg/logger"
	"shifts/pkg/serrors"

	"go.uber.org/zap"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    string
	Message string
}

// ErrorResponse is an Error together with the status code it is served with.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

// NewError maps err to its response and reports it. Not found errors are an
// expected outcome of lookups and are only logged at debug level; everything
// else is logged as an error and counted by kind.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)

	if kind == serrors.ErrNotFound {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	} else {
		logger.Error(ctx, "request failed", zap.String("kind", kind.Error()), zap.Error(err))
		h.reportedErrors.WithLabelValues(kind.Error()).Inc()
	}

	res := &ErrorResponse{
		StatusCode: statusOf(kind),
		Response:   Error{Code: kind.Error(), Message: defaultMessages[kind]},
	}
	if res.Response.Message == "" {
		res.Response.Message = kind.Error()
	}
	// messages of server side failures may carry internal details
	if res.StatusCode < http.StatusInternalServerError {
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			res.Response.Message = se.Message()
		}
	}

	return res
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:    "resource not found",
	serrors.ErrBadRequest:  "bad request",
	serrors.ErrInternal:    "internal error",
	serrors.ErrTimeout:     "request timed out",
	serrors.ErrUnavailable: "service unavailable",
}

func statusOf(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
