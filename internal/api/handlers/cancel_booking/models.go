package cancel_booking

// CancelBookingRequest тело запроса на отмену брони.
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}
