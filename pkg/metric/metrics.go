package metric

import "time"

type (
	Labels map[string]any

	Metrics interface {
		With(labels Labels) Metrics
		Increment(key string)
		Count(key string, count int)
		Duration(key string, duration time.Duration)
	}
)
