package service

//go:generate go run go.uber.org/mock/mockgen -source=./confirmer.go -destination=../mocks/confirmer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"workbrew/config"
	"workbrew/shared/failure"
)

// ErrSubmissionFailed is returned when the simulated payment processor
// rejects a submission. The session stays on the payment step.
var ErrSubmissionFailed = failure.BadGateway("booking submission failed, please try again")

// Confirmer stands in for the payment processor. Confirm blocks for the
// configured latency and honors cancellation.
type Confirmer interface {
	Confirm(ctx context.Context, reservationID string) error
}

type simulatedConfirmer struct {
	latency     time.Duration
	failureRate float64
	rnd         *rand.Rand
}

func NewSimulatedConfirmer(cfg *config.Config, rnd *rand.Rand) Confirmer {
	return &simulatedConfirmer{
		latency:     time.Duration(cfg.Booking.SubmitLatencyMS) * time.Millisecond,
		failureRate: cfg.Booking.FailureRate,
		rnd:         rnd,
	}
}

func (c *simulatedConfirmer) Confirm(ctx context.Context, _ string) error {
	timer := time.NewTimer(c.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("booking confirmation cancelled: %w", ctx.Err())
	case <-timer.C:
	}

	if c.failureRate > 0 && c.rnd.Float64() < c.failureRate {
		return ErrSubmissionFailed //nolint:wrapcheck
	}

	return nil
}
