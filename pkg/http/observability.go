package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/upservice/user-profile-service/pkg/observability"
)

const DefaultRequestIDHeader = "X-Request-Id"

type RequestIDExtractor func(*http.Request) string

// WithObservability stores the request ID from the first matching extractor
// into the request context.
func WithObservability(observer observability.Observer, extractors ...RequestIDExtractor) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, extractor := range extractors {
				requestID := extractor(r)
				if requestID == "" {
					continue
				}

				r = r.WithContext(observer.WithRequestID(r.Context(), requestID))
				break
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func NewHTTPHeaderRequestIDExtractor(header string) RequestIDExtractor {
	extractor := Header[string](header)
	return func(r *http.Request) string {
		requestID, err := extractor(r)
		if err != nil {
			return ""
		}
		return requestID
	}
}

func NewRandomUUIDRequestIDExtractor() RequestIDExtractor {
	return func(_ *http.Request) string {
		return uuid.New().String()
	}
}
