package check_slot

// CheckSlotResponse результат точечной проверки слота.
type CheckSlotResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
