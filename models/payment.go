package models

// CheckoutRequest is what the payment service asks the gateway to charge.
type CheckoutRequest struct {
	BookingID   string
	CustomerID  string
	ProductName string
	Description string
	// Amount in the smallest currency unit.
	Amount     int64
	Currency   string
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the gateway's answer to a CheckoutRequest.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// SessionStatus is the gateway's view of a checkout session.
type SessionStatus struct {
	SessionID string
	Paid      bool
	Metadata  map[string]string
}

// PaymentStatusView is the read-only projection served by GET /payments/status/:bookingId.
type PaymentStatusView struct {
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	TotalCost     float64       `json:"totalCost"`
	BookingStatus BookingStatus `json:"status"`
}

// PaymentConfirmation is returned by POST /payments/success.
type PaymentConfirmation struct {
	Success bool         `json:"success"`
	Booking *BookingView `json:"booking"`
	Message string       `json:"message"`
}

const (
	MetadataBookingID  = "bookingId"
	MetadataCustomerID = "userId"
)
