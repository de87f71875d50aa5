package observe

import (
	"context"

	"github.com/kbukum/pushflow/logger"
	"github.com/kbukum/pushflow/pipeline"
)

// Sink wraps c so every value it receives is counted for stage. Values are
// passed through unchanged and c's error is returned unchanged.
//
// Stage counts are recorded outside any span: a Sink has no context, so
// pipeline.values data points are keyed by pipeline and stage attributes
// only and carry no link to the pipeline.run span of the enclosing Run.
func Sink[T any](o *Observer, stage string, c pipeline.Sink[T]) pipeline.Sink[T] {
	log := o.log.WithStage(stage)
	logValues := o.logValues && log.DebugEnabled()
	return func(v T) error {
		o.metrics.RecordValue(context.Background(), o.name, stage)
		if logValues {
			log.Debug("value", logger.Fields(logger.FieldValue, v))
		}
		return c(v)
	}
}

// Source wraps p so every value it delivers is counted for stage.
func Source[T any](o *Observer, stage string, p pipeline.Source[T]) pipeline.Source[T] {
	return func(sink pipeline.Sink[T]) error {
		return p(Sink(o, stage, sink))
	}
}

// Transform wraps t so every value it produces is counted for stage.
func Transform[A, B any](o *Observer, stage string, t pipeline.Transform[A, B]) pipeline.Transform[A, B] {
	return func(x A) pipeline.Source[B] {
		return Source(o, stage, t(x))
	}
}
