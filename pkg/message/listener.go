package message

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/upservice/user-profile-service/pkg/log"
	"github.com/upservice/user-profile-service/pkg/metric"
	"github.com/upservice/user-profile-service/pkg/worker"
)

type (
	Listener struct {
		consumer Consumer
		handler  Handler
	}

	ListenerOption func(*Listener)
)

func NewListener(consumer Consumer, handler Handler, opts ...ListenerOption) *Listener {
	l := &Listener{
		consumer: consumer,
		handler:  handler,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WorkerJob returns the consume loop. A failed message is redelivered by the
// broker after Nack; the loop backs off between consecutive failures and
// resets after the first success.
func (l *Listener) WorkerJob() worker.ContextJob {
	return func(ctx context.Context) error {
		defer l.consumer.Close()

		eb := backoff.NewExponentialBackOff()
		eb.InitialInterval = time.Second
		eb.MaxInterval = time.Minute
		eb.MaxElapsedTime = 0

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case msg, ok := <-l.consumer.Messages():
				if !ok {
					return fmt.Errorf("consumer %s channel closed", l.consumer.Name())
				}

				err := l.handleMessage(ctx, msg)
				if err != nil {
					l.consumer.Nack(msg)
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(eb.NextBackOff()):
					}
					continue
				}

				l.consumer.Ack(msg)
				eb.Reset()
			}
		}
	}
}

func (l *Listener) handleMessage(ctx context.Context, msg *ConsumerMessage) (err error) {
	defer func() {
		if panicMsg := recover(); panicMsg != nil {
			err = fmt.Errorf("message handler failed with panic: %v\n%s", panicMsg, debug.Stack())
		}
	}()

	ctx = contextWithConsumerMessage(ctx, msg)
	return l.handler(ctx, &msg.Message)
}

func WithHandlerLogging(logger log.Logger, infoLevel, errorLevel log.Level) ListenerOption {
	return func(l *Listener) {
		handler := l.handler
		l.handler = func(ctx context.Context, msg *Message) error {
			msgLogger := logger.With(log.Fields{
				"messageID": msg.ID,
				"topic":     msg.Topic,
				"consumer":  l.consumer.Name(),
			})

			err := handler(ctx, msg)
			if err != nil {
				msgLogger.WithError(err).Log(ctx, errorLevel, "message handled with error")
				return err
			}

			msgLogger.Log(ctx, infoLevel, "message handled")
			return nil
		}
	}
}

func WithHandlerMetrics(metrics metric.Metrics) ListenerOption {
	return func(l *Listener) {
		handler := l.handler
		l.handler = func(ctx context.Context, msg *Message) error {
			started := time.Now()
			err := handler(ctx, msg)

			status := "success"
			if err != nil {
				status = "failure"
			}

			metrics.With(metric.Labels{
				"topic":    msg.Topic,
				"consumer": l.consumer.Name(),
				"status":   status,
			}).Duration("message_handle_duration_seconds", time.Since(started))
			return err
		}
	}
}

func contextWithConsumerMessage(ctx context.Context, msg *ConsumerMessage) context.Context {
	if msg.Context == nil {
		return ctx
	}

	// keep the consumer-scoped values reachable from the handler context
	return mergedValueContext{Context: ctx, values: msg.Context}
}

type mergedValueContext struct {
	context.Context
	values context.Context
}

func (c mergedValueContext) Value(key any) any {
	if value := c.Context.Value(key); value != nil {
		return value
	}
	return c.values.Value(key)
}
