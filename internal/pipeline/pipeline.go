package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/geo-lookup/internal/domain"
	"github.com/couchcryptid/geo-lookup/internal/observability"
	sharedretry "github.com/couchcryptid/storm-data-shared/retry"
	"github.com/jonboulle/clockwork"
)

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// Extractor reads the next lookup request from the source.
type Extractor interface {
	Extract(ctx context.Context) (domain.RawMessage, error)
}

// Transformer turns a request message into a result message. An error means
// the request could not be decoded and is dropped.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawMessage) (domain.OutputMessage, error)
}

// Loader writes one result message to the destination.
type Loader interface {
	Load(ctx context.Context, msg domain.OutputMessage) error
}

// Pipeline runs the extract-resolve-load loop one message at a time.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loader      Loader
	logger      *slog.Logger
	metrics     *observability.Metrics
	clock       clockwork.Clock

	running  atomic.Bool
	degraded atomic.Bool
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, t Transformer, l Loader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		clock:       clockwork.NewRealClock(),
	}
}

// WithClock replaces the clock used for backoff sleeps.
func (p *Pipeline) WithClock(c clockwork.Clock) *Pipeline {
	p.clock = c
	return p
}

// CheckReadiness returns nil while the pipeline is running and its last
// Kafka call succeeded.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.running.Load() {
		return errors.New("pipeline is not running")
	}
	if p.degraded.Load() {
		return errors.New("pipeline is retrying after a broker error")
	}
	return nil
}

// Run processes messages until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started")
	p.running.Store(true)
	p.metrics.PipelineRunning.Set(1)
	defer func() {
		p.running.Store(false)
		p.metrics.PipelineRunning.Set(0)
	}()

	backoff := initialBackoff
	for {
		if ctx.Err() != nil {
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		}
		if !p.processOne(ctx, &backoff) {
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// processOne runs one extract-transform-load-commit cycle. Returns false if
// the pipeline should stop.
func (p *Pipeline) processOne(ctx context.Context, backoff *time.Duration) bool {
	raw, err := p.extractor.Extract(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract failed", "error", err)
		return p.backoffOrStop(ctx, backoff)
	}
	p.metrics.MessagesConsumed.Inc()

	out, err := p.transformer.Transform(ctx, raw)
	if ctx.Err() != nil {
		// Leave the offset uncommitted so the request is redelivered.
		return false
	}
	if err != nil {
		p.logger.Warn("undecodable lookup request, skipping message",
			"error", err,
			"topic", raw.Topic,
			"partition", raw.Partition,
			"offset", raw.Offset,
		)
		p.metrics.ResolveErrors.Inc()
		p.commitOffset(ctx, raw)
		p.recovered(backoff)
		return true
	}

	if err := p.loader.Load(ctx, out); err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("load failed", "error", err, "key", string(out.Key))
		return p.backoffOrStop(ctx, backoff)
	}
	p.metrics.MessagesProduced.Inc()
	p.commitOffset(ctx, raw)
	p.recovered(backoff)
	return true
}

func (p *Pipeline) recovered(backoff *time.Duration) {
	*backoff = initialBackoff
	p.degraded.Store(false)
}

// backoffOrStop sleeps with the current backoff and advances it. Returns
// false if the context ended while waiting.
func (p *Pipeline) backoffOrStop(ctx context.Context, backoff *time.Duration) bool {
	p.degraded.Store(true)
	select {
	case <-ctx.Done():
		return false
	case <-p.clock.After(*backoff):
	}
	*backoff = sharedretry.NextBackoff(*backoff, maxBackoff)
	return true
}

// commitOffset commits the message offset if a commit function is available.
func (p *Pipeline) commitOffset(ctx context.Context, raw domain.RawMessage) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}
