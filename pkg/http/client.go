package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/upservice/user-profile-service/pkg/log"
	"github.com/upservice/user-profile-service/pkg/metric"
	"github.com/upservice/user-profile-service/pkg/observability"
)

type (
	Destination string

	ClientOption func(*clientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}
)

type clientImpl struct {
	destinationName string
	restClient      *resty.Client
	opts            []ClientOption
}

func NewClient(opts ...ClientOption) Client {
	client := clientImpl{
		restClient: resty.New(),
		opts:       opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c clientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.restClient.NewRequest().SetContext(ctx)
}

func (c clientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name Destination, baseURL string) ClientOption {
	return func(c *clientImpl) {
		c.destinationName = string(name)
		c.restClient.SetBaseURL(baseURL)
	}
}

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			requestID, ok := observer.RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(requestIDHeaderName, requestID)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			responseLogger := logger.With(log.Fields{
				"destination":  c.destinationNameForLogging(),
				"method":       resp.Request.Method,
				"url":          resp.Request.URL,
				"responseCode": resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				responseLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				responseLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.restClient.OnError(func(req *resty.Request, err error) {
			logger.With(log.Fields{
				"destination": c.destinationNameForLogging(),
				"method":      req.Method,
				"url":         req.URL,
			}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": c.destinationNameForLogging(),
				"method":      resp.Request.Method,
				"code":        fmt.Sprintf("%d", resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

func (c *clientImpl) destinationNameForLogging() string {
	if c.destinationName != "" {
		return c.destinationName
	}
	return "-"
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{baseOpts: opts}
}

func (f *ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, f.baseOpts...)
	opts = append(opts, WithClientDestination(dest, baseURL))
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}
