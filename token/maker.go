package token

import "time"

// TokenType identifies the kind of token carried in a payload
type TokenType byte

const (
	TokenTypeAccessToken  TokenType = 1
	TokenTypeRefreshToken TokenType = 2
)

// Maker is an interface for managing tokens
type Maker interface {
	// CreateToken creates a new token for a specific user id and duration
	CreateToken(userID int64, duration time.Duration, tokenType TokenType) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not
	VerifyToken(token string, tokenType TokenType) (*Payload, error)
}
