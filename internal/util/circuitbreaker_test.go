package util

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCircuitBreakerOpensAtThreshold(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Minute, 0, nil, zap.NewNop())

	cb.RecordFailure(0)
	cb.RecordFailure(0)
	if !cb.CanExecute() {
		t.Fatalf("expected circuit to stay closed below threshold")
	}

	cb.RecordFailure(0)
	if cb.CanExecute() {
		t.Fatalf("expected circuit to open at threshold")
	}

	status := cb.GetStatus()
	if status.State != CircuitStateOpen || status.NextRetryTime == nil {
		t.Fatalf("expected open status with retry time, got %+v", status)
	}
}

func TestCircuitBreakerHalfOpensAfterTimeoutAndCloses(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Minute, 0, nil, zap.NewNop())
	current := time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return current }

	cb.RecordFailure(0)
	if cb.CanExecute() {
		t.Fatalf("expected open circuit")
	}

	current = current.Add(2 * time.Minute)
	if got := cb.GetState(); got != CircuitStateHalfOpen {
		t.Fatalf("expected HALF_OPEN after timeout, got %s", got)
	}

	cb.RecordSuccess()
	if got := cb.GetState(); got != CircuitStateClosed {
		t.Fatalf("expected CLOSED after success, got %s", got)
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker(5, time.Minute, 0, nil, zap.NewNop())
	current := time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		cb.RecordFailure(0)
	}
	current = current.Add(time.Hour)
	if got := cb.GetState(); got != CircuitStateHalfOpen {
		t.Fatalf("expected HALF_OPEN, got %s", got)
	}

	cb.RecordFailure(0)
	if got := cb.GetStatus().State; got != CircuitStateOpen {
		t.Fatalf("expected a single half-open failure to reopen, got %s", got)
	}
}

func TestCircuitBreakerReset(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Hour, 0, nil, zap.NewNop())
	cb.RecordFailure(0)
	cb.Reset()
	if !cb.CanExecute() {
		t.Fatalf("expected reset circuit to accept calls")
	}
}
