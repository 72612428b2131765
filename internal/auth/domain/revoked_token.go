package domain

import "time"

// RevokedToken is a durable marker invalidating a specific token id before
// its natural expiry. ExpiresAt mirrors the token's own expiry so the record
// can be purged once it is moot.
type RevokedToken struct {
	TokenID   string
	ExpiresAt time.Time
	CreatedAt time.Time
}
