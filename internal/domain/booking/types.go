package booking

// PaymentMethod selects how a booking is settled. Exactly one method is
// active per booking; quote fields for the other methods stay zero.
type PaymentMethod string

const (
	// PaymentNormal is cash or QRIS, settled at the cashier.
	PaymentNormal PaymentMethod = "normal"
	// PaymentCredit draws from a membership credit balance.
	PaymentCredit PaymentMethod = "credit"
	// PaymentVirtualOffice draws from a virtual-office benefit-hour balance.
	PaymentVirtualOffice PaymentMethod = "virtual_office"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentNormal, PaymentCredit, PaymentVirtualOffice:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// Blocking reports whether a booking in this status occupies its hours.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}
