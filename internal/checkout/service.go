package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blvshy/doodleart-backend/internal/cart"
	"github.com/blvshy/doodleart-backend/internal/notifications"
	"github.com/blvshy/doodleart-backend/pkg/config"
	"github.com/blvshy/doodleart-backend/pkg/enums"
	pkgerrors "github.com/blvshy/doodleart-backend/pkg/errors"
	"github.com/blvshy/doodleart-backend/pkg/logger"
)

// Service drives the checkout state machine:
// collecting → processing → succeeded. One session at a time per buyer.
type Service interface {
	Open(ctx context.Context, buyerSessionID string) (Summary, error)
	Get(ctx context.Context, buyerSessionID string) (Summary, error)
	Submit(ctx context.Context, buyerSessionID string, details BuyerDetails) (Summary, error)
	Close(ctx context.Context, buyerSessionID string) error
}

type service struct {
	mu       sync.Mutex
	sessions map[string]*session

	carts    *cart.Registry
	notifier notifications.Service
	logg     *logger.Logger

	processingDelay time.Duration
	successTTL      time.Duration
}

// NewService wires the checkout dependencies.
func NewService(carts *cart.Registry, notifier notifications.Service, cfg config.CheckoutConfig, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart registry required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	if cfg.ProcessingDelay <= 0 || cfg.SuccessDisplayTTL <= 0 {
		return nil, fmt.Errorf("checkout delays must be positive")
	}
	return &service{
		sessions:        make(map[string]*session),
		carts:           carts,
		notifier:        notifier,
		logg:            logg,
		processingDelay: cfg.ProcessingDelay,
		successTTL:      cfg.SuccessDisplayTTL,
	}, nil
}

// Open freezes the current cart into a new collecting session. Reopening
// while a session exists returns that session unchanged. An empty cart
// cannot enter checkout.
func (s *service) Open(ctx context.Context, buyerSessionID string) (Summary, error) {
	if buyerSessionID == "" {
		return Summary{}, pkgerrors.New(pkgerrors.CodeValidation, "buyer session required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[buyerSessionID]; ok {
		existing.mu.Lock()
		defer existing.mu.Unlock()
		return existing.summaryLocked(), nil
	}

	snapshot := s.carts.Get(buyerSessionID).Snapshot()
	if len(snapshot.Lines) == 0 {
		return Summary{}, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	sess := &session{
		id:       uuid.NewString(),
		buyerSID: buyerSessionID,
		status:   enums.CheckoutStatusCollecting,
		snapshot: snapshot,
	}
	s.sessions[buyerSessionID] = sess

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"checkout_id": sess.id,
			"lines":       len(snapshot.Lines),
			"total":       snapshot.TotalPrice,
		}), "checkout.opened")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.summaryLocked(), nil
}

func (s *service) Get(ctx context.Context, buyerSessionID string) (Summary, error) {
	sess, err := s.lookup(buyerSessionID)
	if err != nil {
		return Summary{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.summaryLocked(), nil
}

// Submit records the buyer's details and moves collecting → processing.
// Details arrive already validated at the decode layer. The simulated
// confirmation fires after the configured delay; it never fails, but a
// Close before it fires cancels it.
func (s *service) Submit(ctx context.Context, buyerSessionID string, details BuyerDetails) (Summary, error) {
	sess, err := s.lookup(buyerSessionID)
	if err != nil {
		return Summary{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.status != enums.CheckoutStatusCollecting {
		return Summary{}, pkgerrors.New(pkgerrors.CodeStateConflict, "checkout already submitted").
			WithDetails(map[string]any{"status": sess.status})
	}

	sess.buyer = details
	sess.status = enums.CheckoutStatusProcessing
	sess.confirmTimer = time.AfterFunc(s.processingDelay, func() {
		s.confirm(sess)
	})

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"checkout_id":    sess.id,
			"payment_method": details.PaymentMethod,
		}), "checkout.processing")
	}

	return sess.summaryLocked(), nil
}

// Close discards the session. During processing this cancels the pending
// confirmation, leaving the cart untouched.
func (s *service) Close(ctx context.Context, buyerSessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[buyerSessionID]
	if ok {
		delete(s.sessions, buyerSessionID)
	}
	s.mu.Unlock()
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "no active checkout")
	}

	sess.mu.Lock()
	wasProcessing := sess.status == enums.CheckoutStatusProcessing
	sess.closed = true
	sess.stopTimersLocked()
	sess.mu.Unlock()

	if s.logg != nil && wasProcessing {
		s.logg.Warn(s.logg.WithField(ctx, "checkout_id", sess.id), "checkout.canceled while processing")
	}
	return nil
}

func (s *service) lookup(buyerSessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[buyerSessionID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no active checkout")
	}
	return sess, nil
}

// confirm is the simulated payment callback. It re-checks session state
// so a Close that raced the timer wins and nothing is mutated.
func (s *service) confirm(sess *session) {
	sess.mu.Lock()
	if sess.closed || sess.status != enums.CheckoutStatusProcessing {
		sess.mu.Unlock()
		return
	}
	sess.status = enums.CheckoutStatusSucceeded
	sess.confirmTimer = nil
	method := sess.buyer.PaymentMethod
	buyerSID := sess.buyerSID
	sess.dismissTimer = time.AfterFunc(s.successTTL, func() {
		s.dismiss(sess)
	})
	sess.mu.Unlock()

	s.carts.Get(buyerSID).Clear()

	message := "Payment successful! 🎉"
	if method == enums.PaymentMethodComplements {
		message = "Thank you for your kind words! 💖"
	}
	s.notifier.Push(buyerSID, notifications.KindSuccess, message)

	if s.logg != nil {
		ctx := s.logg.WithFields(context.Background(), map[string]any{
			"checkout_id":    sess.id,
			"session_id":     buyerSID,
			"payment_method": method,
		})
		s.logg.Info(ctx, "checkout.succeeded")
	}
}

// dismiss retires a succeeded session after its display window.
func (s *service) dismiss(sess *session) {
	sess.mu.Lock()
	if sess.closed || sess.status != enums.CheckoutStatusSucceeded {
		sess.mu.Unlock()
		return
	}
	sess.closed = true
	buyerSID := sess.buyerSID
	sess.mu.Unlock()

	s.mu.Lock()
	if current, ok := s.sessions[buyerSID]; ok && current == sess {
		delete(s.sessions, buyerSID)
	}
	s.mu.Unlock()
}
