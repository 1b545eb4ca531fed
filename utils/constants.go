// File: utils/constants.go
package utils

// Storage keys of the serialized records.
const (
	UserKeyPrefix         = "haviaa_user:"
	BookingsKey           = "haviaa_bookings"
	ReplacementsKey       = "haviaa_replacements"
	NotificationKeyPrefix = "haviaa_notifications:"
)

// Gin context keys set by the session middleware.
const (
	CtxSessionID = "sessionID"
	CtxUser      = "user"
)
