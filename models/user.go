package models

import "time"

// User is the identity held by one client session.
type User struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address         string    `bson:"address,omitempty" json:"address,omitempty"`
	Preferences     []string  `bson:"preferences,omitempty" json:"preferences,omitempty"`
	ProfileComplete bool      `bson:"profileComplete" json:"profileComplete"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasCompleteProfile reports whether every field required for hiring is filled in.
func (u User) HasCompleteProfile() bool {
	return u.Name != "" && u.Email != "" && u.Phone != "" && u.Address != ""
}

// ProfileUpdate carries a partial profile; nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Preferences *[]string `json:"preferences,omitempty"`
}

// Session binds a signed token to the user it was issued for.
type Session struct {
	ID    string `json:"sessionId"`
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PreferenceOptions are the household preferences a user may pick from.
var PreferenceOptions = []string{
	"Pet-friendly maid required",
	"Cooking support needed",
	"Elderly care experience",
	"Baby care experience",
	"Organic cleaning products only",
	"Deep cleaning focus",
	"Laundry and ironing",
	"Garden maintenance",
}
