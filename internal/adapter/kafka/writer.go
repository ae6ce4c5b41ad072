package kafka

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/couchcryptid/geo-lookup/internal/config"
	"github.com/couchcryptid/geo-lookup/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces lookup results to a Kafka topic.
// It implements pipeline.Loader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Load publishes one result. Results are keyed by request ID so every
// answer to the same ID lands on the same partition.
func (w *Writer) Load(ctx context.Context, msg domain.OutputMessage) error {
	return w.writer.WriteMessages(ctx, toKafkaMessage(msg))
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// toKafkaMessage converts an output message. Headers are sorted by key.
func toKafkaMessage(msg domain.OutputMessage) kafkago.Message {
	headers := make([]kafkago.Header, 0, len(msg.Headers))
	for _, k := range slices.Sorted(maps.Keys(msg.Headers)) {
		headers = append(headers, kafkago.Header{Key: k, Value: []byte(msg.Headers[k])})
	}
	return kafkago.Message{
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	}
}
