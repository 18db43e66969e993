package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the structure of the JSON Web Token (JWT) claims for the
// CarAI server. It embeds the standard claims required by the JWT specification
// plus the custom claims used to locate the caller's conversation session.
type Payload struct {
	// StandardClaims embeds the necessary JWT standard fields such as Exp
	// (Expiration), Iat (Issued At), and Iss (Issuer).
	jwt.StandardClaims `json:"standard_claims"`

	// SessionID identifies the conversation session this token is bound to.
	// Each login produces a fresh session, so the token is the connection identity.
	SessionID string `json:"session_id"`

	// Username is the authenticated account name the session belongs to.
	Username string `json:"username"`
}
