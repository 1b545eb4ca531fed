package models

// ReminderPayload is the queued body of a scheduled user notification.
type ReminderPayload struct {
	UserID    string           `json:"userId"`
	BookingID string           `json:"bookingId"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	FireDate  string           `json:"fireDate"` // "YYYY-MM-DD"
}
