package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "internal/pkg/mqx/tracing"

// TraceMq decora un MQ aggiungendo uno span per ogni invio.
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(mq mq.MQ) *TraceMq {
	return &TraceMq{MQ: mq, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return NewTraceProducer(pro, t.tracer), nil
}

type TraceProducer struct {
	mq.Producer
	tracer trace.Tracer
}

func NewTraceProducer(producer mq.Producer, tracer trace.Tracer) *TraceProducer {
	return &TraceProducer{
		Producer: producer,
		tracer:   tracer,
	}
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	return t.traced(ctx, "mq.produce", m, func(ctx context.Context) (*mq.ProducerResult, error) {
		return t.Producer.Produce(ctx, m)
	})
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	return t.traced(ctx, "mq.produce_with_partition", m, func(ctx context.Context) (*mq.ProducerResult, error) {
		return t.Producer.ProduceWithPartition(ctx, m, partition)
	})
}

func (t *TraceProducer) traced(ctx context.Context, name string, m *mq.Message,
	fn func(ctx context.Context) (*mq.ProducerResult, error)) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "mq"),
		attribute.String("messaging.operation", "produce"),
	}
	if m != nil {
		if m.Topic != "" {
			attrs = append(attrs, attribute.String("messaging.topic", m.Topic))
		}
		if m.Value != nil {
			attrs = append(attrs, attribute.Int("messaging.message_length", len(m.Value)))
		}
	}
	span.SetAttributes(attrs...)

	res, err := fn(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}
