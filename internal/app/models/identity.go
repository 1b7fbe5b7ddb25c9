package models

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID string
	Role   string
	Name   string
}
