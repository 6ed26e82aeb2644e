package domain

import "time"

type PaymentSessionStatus string

const (
	PaymentSessionPending   PaymentSessionStatus = "pending"
	PaymentSessionPaid      PaymentSessionStatus = "paid"
	PaymentSessionFailed    PaymentSessionStatus = "failed"
	PaymentSessionCancelled PaymentSessionStatus = "cancelled"
)

func (s PaymentSessionStatus) Terminal() bool {
	return s == PaymentSessionPaid || s == PaymentSessionFailed || s == PaymentSessionCancelled
}

// PaymentSession mirrors the external provider's checkout session for one
// booking. Status changes are pulled by the reconciliation poller, never
// pushed. One session per booking, enforced by the unique index.
type PaymentSession struct {
	ID                string               `json:"id" gorm:"primaryKey;type:varchar(64)"`
	BookingID         string               `json:"booking_id" gorm:"uniqueIndex;not null"`
	ProviderSessionID string               `json:"provider_session_id" gorm:"index"`
	CheckoutURL       string               `json:"checkout_url" gorm:"type:text"`
	Status            PaymentSessionStatus `json:"status" gorm:"type:varchar(20);index;default:'pending'"`
	FailureReason     string               `json:"failure_reason,omitempty" gorm:"type:text"`
	PaidAt            *time.Time           `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
