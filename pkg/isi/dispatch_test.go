package isi

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/telemetry"
)

func TestDispatchCountsSuccessByVerb(t *testing.T) {
	tel := telemetry.New()
	view := newView()

	if _, err := Dispatch(AddDomain{Object: *domain.NewDomain("wonderland")}, domain.AccountID{}, view, tel); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	got := testutil.ToFloat64(tel.InstructionsExecuted.WithLabelValues("add_domain"))
	if got != 1 {
		t.Fatalf("expected add_domain counter at 1, got %v", got)
	}
}

func TestDispatchDoesNotCountOnFailure(t *testing.T) {
	tel := telemetry.New()
	view := mustAddDomain(t, newView(), "wonderland")

	_, err := Dispatch(AddDomain{Object: *domain.NewDomain("wonderland")}, domain.AccountID{}, view, tel)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	got := testutil.ToFloat64(tel.InstructionsExecuted.WithLabelValues("add_domain"))
	if got != 0 {
		t.Fatalf("expected no count on failed execution, got %v", got)
	}
}

func TestDispatchToleratesNilTelemetry(t *testing.T) {
	view := newView()
	if _, err := Dispatch(AddDomain{Object: *domain.NewDomain("wonderland")}, domain.AccountID{}, view, nil); err != nil {
		t.Fatalf("Dispatch with nil telemetry: %v", err)
	}
}
