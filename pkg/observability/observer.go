package observability

import (
	"context"

	"github.com/upservice/user-profile-service/pkg/log"
)

type (
	Observer interface {
		RequestID(context.Context) (string, bool)
		WithRequestID(context.Context, string) context.Context
	}

	ObserverOption func(*observer)

	contextKey int
)

const requestIDContextKey contextKey = iota

const requestIDLogField = "requestID"

type observer struct {
	logger log.Logger
}

func New(opts ...ObserverOption) Observer {
	o := &observer{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithRequestIDLogging appends the request ID to the fields of every log
// record made with the returned context.
func WithRequestIDLogging(logger log.Logger) ObserverOption {
	return func(o *observer) {
		o.logger = logger
	}
}

func (o *observer) RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDContextKey).(string)
	return requestID, ok && requestID != ""
}

func (o *observer) WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}

	ctx = context.WithValue(ctx, requestIDContextKey, requestID)
	if o.logger != nil {
		ctx = o.logger.WithContext(ctx, log.Fields{requestIDLogField: requestID})
	}

	return ctx
}
