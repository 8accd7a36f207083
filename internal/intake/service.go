package intake

import (
	"context"
	"sync"

	"github.com/oppd-health/whatsapp-intake/internal/i18n"
	"github.com/oppd-health/whatsapp-intake/internal/observability/metrics"
	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

// Archiver records conversation turns for audit. Archive failures are
// logged, never surfaced to the user.
type Archiver interface {
	RecordTurn(ctx context.Context, identity, speaker, text string, state string) error
}

// Service wraps the engine with the context store and per-identity locking.
// For one identity, turns are processed strictly sequentially; distinct
// identities proceed in parallel.
type Service struct {
	store   ContextStore
	engine  *Engine
	archive Archiver
	metrics *metrics.IntakeMetrics
	logger  *logging.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store ContextStore, engine *Engine, archive Archiver, m *metrics.IntakeMetrics, logger *logging.Logger) *Service {
	return &Service{
		store:   store,
		engine:  engine,
		archive: archive,
		metrics: m,
		logger:  logger,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Service) lockFor(identity string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[identity]
	if !ok {
		l = &sync.Mutex{}
		s.locks[identity] = l
	}
	return l
}

// ProcessUtterance runs one conversation turn. It always returns a sendable
// outbound message; a non-nil error only signals that the turn could not be
// persisted and reports the cause to the caller's logs, not to the user.
func (s *Service) ProcessUtterance(ctx context.Context, identity, text string) (out Outbound, err error) {
	lock := s.lockFor(identity)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.store.GetOrCreate(ctx, identity)
	if err != nil {
		s.logger.Error("context store load failed", "identity", identity, "error", err)
		s.metrics.ObserveTurn("unknown", "store_error")
		return Outbound{
			Message: i18n.Resolve(i18n.PromptTryAgain, i18n.Default()),
			State:   StateInitial,
		}, err
	}

	fromState := rec.State

	// A panicking handler must not kill the process or corrupt the record.
	// The record is only saved on success, so the prior state survives.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during conversation turn",
				"identity", identity, "state", string(fromState), "panic", r)
			s.metrics.ObserveTurn(string(fromState), "panic")
			out = Outbound{
				Message: i18n.Resolve(i18n.PromptTryAgain, rec.Locale()),
				State:   fromState,
			}
			err = nil
		}
	}()

	out = s.engine.Advance(ctx, rec, text)

	if err := s.store.Save(ctx, rec); err != nil {
		s.logger.Error("context store save failed", "identity", identity, "error", err)
		s.metrics.ObserveTurn(string(fromState), "store_error")
		return out, err
	}

	s.archiveTurn(ctx, identity, "user", text, string(fromState))
	s.archiveTurn(ctx, identity, "bot", out.Message, string(out.State))

	s.metrics.ObserveTurn(string(fromState), "ok")
	return out, nil
}

// Snapshot returns the current record for an identity without advancing the
// conversation. Used by the admin inspection endpoint.
func (s *Service) Snapshot(ctx context.Context, identity string) (*Record, error) {
	lock := s.lockFor(identity)
	lock.Lock()
	defer lock.Unlock()
	return s.store.GetOrCreate(ctx, identity)
}

func (s *Service) archiveTurn(ctx context.Context, identity, speaker, text, state string) {
	if s.archive == nil {
		return
	}
	if err := s.archive.RecordTurn(ctx, identity, speaker, text, state); err != nil {
		s.logger.Warn("turn archive failed", "identity", identity, "error", err)
	}
}
