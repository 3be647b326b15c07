package models

import "time"

// User represents a platform account. Customers, providers and admins share the
// same collection; provider capability is carried by ProviderTypes, which is
// mutated only by the qualification gate on approval.
type User struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Email         string   `bson:"email" json:"email"`
	Country       string   `bson:"country,omitempty" json:"country,omitempty"`
	Mobile        string   `bson:"mobile,omitempty" json:"mobile,omitempty"`
	IsAdmin       bool     `bson:"is_admin" json:"is_admin"`
	Type          string   `bson:"type" json:"type"` // "user", "provider", "admin"
	ProviderTypes []string `bson:"provider_types,omitempty" json:"provider_types,omitempty"`
	// Deprecated single-value mirror of the first approved provider type.
	// Set once for backward compatibility, never overwritten.
	LegacyProviderType string    `bson:"provider_type,omitempty" json:"provider_type,omitempty"`
	FCMToken           string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// HasProviderType reports whether t is already in the approved set.
func (u *User) HasProviderType(t string) bool {
	for _, pt := range u.ProviderTypes {
		if pt == t {
			return true
		}
	}
	return false
}
