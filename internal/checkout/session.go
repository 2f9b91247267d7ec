package checkout

import (
	"sync"
	"time"

	"github.com/blvshy/doodleart-backend/internal/cart"
	"github.com/blvshy/doodleart-backend/pkg/enums"
)

// BuyerDetails are the fields collected before the simulated payment.
// The card fields are only required when paying by card, and the
// complement only when paying in complements.
type BuyerDetails struct {
	Name          string              `json:"name" validate:"required"`
	Email         string              `json:"email" validate:"required,email"`
	Phone         string              `json:"phone" validate:"required"`
	Address       string              `json:"address" validate:"required"`
	PaymentMethod enums.PaymentMethod `json:"payment_method" validate:"required,oneof=card cash complements"`

	CardNumber string `json:"card_number,omitempty" validate:"required_if=PaymentMethod card"`
	ExpiryDate string `json:"expiry_date,omitempty" validate:"required_if=PaymentMethod card"`
	CVV        string `json:"cvv,omitempty" validate:"required_if=PaymentMethod card"`
	Complement string `json:"complement,omitempty" validate:"required_if=PaymentMethod complements"`
}

// Summary is the buyer-visible view of a checkout session. Lines and
// total are frozen at open time; later cart mutations do not alter them.
type Summary struct {
	ID            string               `json:"id"`
	Status        enums.CheckoutStatus `json:"status"`
	Lines         []cart.Line          `json:"lines"`
	TotalPrice    int                  `json:"total_price"`
	PaymentMethod enums.PaymentMethod  `json:"payment_method,omitempty"`
}

// session is the state machine instance. All transitions run under mu;
// timer callbacks re-check state so a Close that won the race turns a
// pending completion into a no-op.
type session struct {
	mu sync.Mutex

	id       string
	buyerSID string
	status   enums.CheckoutStatus
	snapshot cart.Snapshot
	buyer    BuyerDetails
	closed   bool

	confirmTimer *time.Timer
	dismissTimer *time.Timer
}

func (s *session) summaryLocked() Summary {
	lines := make([]cart.Line, len(s.snapshot.Lines))
	copy(lines, s.snapshot.Lines)
	return Summary{
		ID:            s.id,
		Status:        s.status,
		Lines:         lines,
		TotalPrice:    s.snapshot.TotalPrice,
		PaymentMethod: s.buyer.PaymentMethod,
	}
}

func (s *session) stopTimersLocked() {
	if s.confirmTimer != nil {
		s.confirmTimer.Stop()
		s.confirmTimer = nil
	}
	if s.dismissTimer != nil {
		s.dismissTimer.Stop()
		s.dismissTimer = nil
	}
}
