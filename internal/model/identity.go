package model

import "time"

// Identity is the two-part bearer credential sent with every request
type Identity struct {
	SessionTicket string    `json:"sessionTicket"` // XSTS token
	AccountHash   string    `json:"accountHash"`   // user hash (uhs)
	ExpiresAt     time.Time `json:"expiresAt"`     // zero when unknown
}

// IsZero reports whether the identity carries no credential
func (i Identity) IsZero() bool {
	return i.SessionTicket == "" && i.AccountHash == ""
}

// Expired reports whether the identity has a known expiry before now
func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}
