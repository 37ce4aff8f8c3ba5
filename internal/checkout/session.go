package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

// Step is one of the three linear checkout stages.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// Status tracks order placement, orthogonal to the step the form is on.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}

var (
	ErrStepIncomplete = errors.New("required fields for this step are empty")
	ErrAtFirstStep    = errors.New("already at the first step")
	ErrNotAtReview    = errors.New("order can only be placed from the review step")
	ErrOrderPlaced    = errors.New("order has already been placed")
)

// Config holds the simulated order processing delays.
type Config struct {
	// ProcessingDelay is how long PlaceOrder stays in PROCESSING before
	// the order completes.
	ProcessingDelay time.Duration
	// ConfirmationDelay is how long the confirmation stays on screen
	// before the completion callback fires.
	ConfirmationDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		ProcessingDelay:   3 * time.Second,
		ConfirmationDelay: 2 * time.Second,
	}
}

// CartReader is the slice of the cart the checkout needs: a point-in-time
// view of the items, re-read on every totals computation.
type CartReader interface {
	Items() []domain.CartItem
}

// Session is a single pass through the checkout flow. It starts at the
// shipping step with empty forms and is discarded on completion or
// cancellation; form state never outlives the session.
//
// PlaceOrder runs the simulated processing on a goroutine bound to the
// session context: cancelling the context while the order is in flight
// stops the pending transitions and suppresses the completion callback,
// so a dismissed checkout never fires into a closed host.
type Session struct {
	mu       sync.Mutex
	step     Step
	status   Status
	customer domain.CustomerInfo
	payment  domain.PaymentInfo

	cart       CartReader
	cfg        Config
	ctx        context.Context
	onComplete func()
	done       chan struct{}
}

// NewSession opens a checkout over the given cart. onComplete is invoked
// at most once, after the order completes and the confirmation delay
// elapses; it is never invoked once ctx is cancelled. A nil onComplete is
// allowed.
func NewSession(ctx context.Context, cart CartReader, cfg Config, onComplete func()) *Session {
	return &Session{
		step:       StepShipping,
		status:     StatusOpen,
		customer:   domain.CustomerInfo{Country: domain.DefaultCountry},
		cart:       cart,
		cfg:        cfg,
		ctx:        ctx,
		onComplete: onComplete,
		done:       make(chan struct{}),
	}
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) CustomerInfo() domain.CustomerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

func (s *Session) PaymentInfo() domain.PaymentInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment
}

// SetCustomerInfo replaces the shipping form. An empty country falls back
// to the default.
func (s *Session) SetCustomerInfo(info domain.CustomerInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return ErrOrderPlaced
	}
	if info.Country == "" {
		info.Country = domain.DefaultCountry
	}
	s.customer = info
	return nil
}

// SetPaymentInfo replaces the payment form.
func (s *Session) SetPaymentInfo(info domain.PaymentInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return ErrOrderPlaced
	}
	s.payment = info
	return nil
}

// StepValid reports whether the gating predicate for the given step holds:
// shipping needs the required customer fields, payment needs all card
// fields, review is always valid.
func (s *Session) StepValid(step Step) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepValid(step)
}

func (s *Session) stepValid(step Step) bool {
	switch step {
	case StepShipping:
		return s.customer.Complete()
	case StepPayment:
		return s.payment.Complete()
	default:
		return true
	}
}

// Continue advances to the next step. It fails with ErrStepIncomplete
// while any required field of the current step is empty.
func (s *Session) Continue() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return ErrOrderPlaced
	}
	if s.step >= StepReview {
		return ErrNotAtReview
	}
	if !s.stepValid(s.step) {
		return ErrStepIncomplete
	}
	s.step++
	return nil
}

// Previous steps back without validation. Stepping back from the first
// step is rejected.
func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return ErrOrderPlaced
	}
	if s.step <= StepShipping {
		return ErrAtFirstStep
	}
	s.step--
	return nil
}

// Summary recomputes the totals from the current cart contents.
func (s *Session) Summary() Summary {
	return Summarize(s.cart.Items())
}

// PlaceOrder starts the simulated order processing. Only legal from the
// review step, and only once. The session moves to PROCESSING
// immediately; completion happens asynchronously.
func (s *Session) PlaceOrder() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return ErrOrderPlaced
	}
	if s.step != StepReview {
		return ErrNotAtReview
	}

	s.status = StatusProcessing
	go s.process()
	return nil
}

func (s *Session) process() {
	defer close(s.done)

	if !s.sleep(s.cfg.ProcessingDelay) {
		return
	}

	s.mu.Lock()
	s.status = StatusCompleted
	s.mu.Unlock()

	if !s.sleep(s.cfg.ConfirmationDelay) {
		return
	}

	if s.onComplete != nil {
		s.onComplete()
	}
}

// sleep waits for d or until the session context is cancelled, reporting
// whether the full delay elapsed.
func (s *Session) sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-s.ctx.Done():
		return false
	}
}

// Wait blocks until the order processing goroutine has finished, whether
// it ran to completion or was cancelled. Returns immediately if
// PlaceOrder was never called.
func (s *Session) Wait() {
	s.mu.Lock()
	placed := s.status != StatusOpen
	s.mu.Unlock()
	if !placed {
		return
	}
	<-s.done
}
