package intake

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/oppd-health/whatsapp-intake/internal/directory"
	"github.com/oppd-health/whatsapp-intake/internal/i18n"
	"github.com/oppd-health/whatsapp-intake/internal/triage"
	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

type panickingGenerator struct{}

func (panickingGenerator) GetQuestion(context.Context, triage.PatientContext, int) (triage.Question, error) {
	panic("generator blew up")
}

type memoryArchive struct {
	mu    sync.Mutex
	turns []string
	err   error
}

func (a *memoryArchive) RecordTurn(_ context.Context, identity, speaker, text, state string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.turns = append(a.turns, speaker+":"+text)
	return nil
}

func newTestService(store ContextStore, gen triage.Generator, archive Archiver) *Service {
	if store == nil {
		store = NewMemoryStore()
	}
	if gen == nil {
		gen = &scriptedGenerator{}
	}
	engine := NewEngine(directory.NewStaticDirectory(), gen, &recordingSink{}, nil, logging.Default(), 3)
	return NewService(store, engine, archive, nil, logging.Default())
}

func TestProcessUtterancePersistsAcrossTurns(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	ctx := context.Background()

	if _, err := svc.ProcessUtterance(ctx, "15551234567", "hi"); err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	out, err := svc.ProcessUtterance(ctx, "15551234567", "1")
	if err != nil {
		t.Fatalf("turn 2: %v", err)
	}
	if out.State != StateDoctorCode {
		t.Fatalf("expected DOCTOR_CODE after language pick, got %s", out.State)
	}

	rec, err := svc.Snapshot(ctx, "15551234567")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if rec.Language != i18n.LocaleEnglish {
		t.Fatalf("language not persisted: %q", rec.Language)
	}
}

func TestPanicInHandlerPreservesState(t *testing.T) {
	store := NewMemoryStore()
	svc := newTestService(store, panickingGenerator{}, nil)
	ctx := context.Background()

	for _, u := range []string{"hi", "1", "DOC001", "yes", "Asha", "34", "f"} {
		if _, err := svc.ProcessUtterance(ctx, "x", u); err != nil {
			t.Fatalf("setup turn %q: %v", u, err)
		}
	}

	// The reason handler calls the generator, which panics.
	out, err := svc.ProcessUtterance(ctx, "x", "fever")
	if err != nil {
		t.Fatalf("panic must not surface as error: %v", err)
	}
	if out.Message != i18n.Resolve(i18n.PromptTryAgain, i18n.LocaleEnglish) {
		t.Fatalf("expected generic try-again, got %q", out.Message)
	}
	if out.State != StateReasonForVisit {
		t.Fatalf("prior state not preserved: %s", out.State)
	}

	rec, _ := svc.Snapshot(ctx, "x")
	if rec.State != StateReasonForVisit {
		t.Fatalf("stored state corrupted by panic: %s", rec.State)
	}
}

func TestArchiveRecordsBothTurns(t *testing.T) {
	archive := &memoryArchive{}
	svc := newTestService(nil, nil, archive)

	if _, err := svc.ProcessUtterance(context.Background(), "y", "hi"); err != nil {
		t.Fatalf("turn: %v", err)
	}
	if len(archive.turns) != 2 {
		t.Fatalf("expected user and bot turns archived, got %v", archive.turns)
	}
	if archive.turns[0] != "user:hi" {
		t.Fatalf("unexpected first archived turn: %q", archive.turns[0])
	}
}

func TestArchiveFailureIsNonFatal(t *testing.T) {
	archive := &memoryArchive{err: errors.New("db down")}
	svc := newTestService(nil, nil, archive)

	out, err := svc.ProcessUtterance(context.Background(), "z", "hi")
	if err != nil {
		t.Fatalf("archive failure must not fail the turn: %v", err)
	}
	if out.State != StateLanguageSelection {
		t.Fatalf("unexpected state: %s", out.State)
	}
}

func TestConcurrentTurnsStayOrderedPerIdentity(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.ProcessUtterance(ctx, "same", "hi")
		}()
	}
	wg.Wait()

	rec, err := svc.Snapshot(ctx, "same")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	// Every turn either showed the menu or soft-retried it; the record must
	// have exactly two history entries per processed turn.
	if len(rec.History)%2 != 0 {
		t.Fatalf("interleaved turns corrupted history: %d entries", len(rec.History))
	}
	if rec.State != StateLanguageSelection {
		t.Fatalf("unexpected state: %s", rec.State)
	}
}
