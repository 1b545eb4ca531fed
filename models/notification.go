package models

import "time"

type NotificationType string

const (
	NotificationArrival NotificationType = "arrival"
	NotificationHygiene NotificationType = "hygiene"
	NotificationReview  NotificationType = "review"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Data      map[string]any   `json:"data,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
