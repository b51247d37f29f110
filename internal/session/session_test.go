package session

import (
	"testing"
	"time"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

func TestSession_HistoryAppendOnly(t *testing.T) {
	sess := New()

	sess.AppendTurn("what is the score?", "25.0%")
	sess.AppendTurn("insulation?", "45mm vs 50mm")

	history := sess.History()
	if len(history) != 2 {
		t.Fatalf("Expected 2 turns, got %d", len(history))
	}
	if history[0].Question != "what is the score?" {
		t.Errorf("Expected turns in order, got %q first", history[0].Question)
	}
	if history[0].Timestamp.IsZero() {
		t.Error("Expected timestamps on turns")
	}

	// Mutating the returned copy must not affect the session.
	history[0].Question = "tampered"
	if sess.History()[0].Question != "what is the score?" {
		t.Error("History must return a copy")
	}
}

func TestSession_ClearHistory(t *testing.T) {
	sess := New()
	sess.AppendTurn("q", "a")

	sess.ClearHistory()
	if len(sess.History()) != 0 {
		t.Error("Expected empty history after clear")
	}
}

func TestStore_IsolatesSessions(t *testing.T) {
	store := NewStore(time.Minute)

	first := New()
	first.Results = []model.ComplianceResult{{ComplianceStatus: model.VerdictCompliant}}
	second := New()
	second.Results = []model.ComplianceResult{{ComplianceStatus: model.VerdictNonCompliant}}

	if first.ID == second.ID {
		t.Fatal("Expected distinct session IDs")
	}

	store.Put(first)
	store.Put(second)

	got, found := store.Get(first.ID)
	if !found {
		t.Fatal("Expected to find first session")
	}
	if got.Results[0].ComplianceStatus != model.VerdictCompliant {
		t.Error("Sessions must not share result batches")
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Minute)
	sess := New()
	store.Put(sess)

	store.Delete(sess.ID)
	if _, found := store.Get(sess.ID); found {
		t.Error("Expected session to be gone after delete")
	}
}
