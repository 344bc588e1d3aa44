package services

import (
	"context"
	"time"
)

// PaymentAuthorizer is the capability behind the payment step. The
// funnel only sees success or failure, so a real gateway can replace
// the simulated one without touching the state machine.
type PaymentAuthorizer interface {
	Authorize(ctx context.Context, total float64, method string) error
}

// simulatedAuthorizer waits a fixed interval and always succeeds.
// There is no cancellation: once authorization starts it runs to
// completion even if the request context is gone.
type simulatedAuthorizer struct {
	delay time.Duration
}

// NewSimulatedAuthorizer creates an authorizer that approves every
// payment after the given processing delay.
func NewSimulatedAuthorizer(delay time.Duration) PaymentAuthorizer {
	return &simulatedAuthorizer{delay: delay}
}

func (a *simulatedAuthorizer) Authorize(_ context.Context, _ float64, _ string) error {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		<-timer.C
	}
	return nil
}
