package domain

// TokenKey is the one storage key the session token lives under, for both
// reads and writes.
const TokenKey = "access"

// TokenStore persists the opaque session token. Token returns "" when no
// token has been stored.
type TokenStore interface {
	Token() string
	SaveToken(token string) error
}
