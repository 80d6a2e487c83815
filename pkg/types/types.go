package types

import "github.com/golang-jwt/jwt/v5"

// TimestampLayout is the wire format of created/updated/changed timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Claims is the JWT payload. Subject carries the user id as a decimal string.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
