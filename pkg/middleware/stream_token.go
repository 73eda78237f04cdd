package middleware

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Stream tokens authenticate SSE subscriptions. EventSource cannot set
// request headers, so streams accept a short-lived HS256 token as a
// query parameter instead of the regular auth header.

// StreamClaims identify who may subscribe to which channel.
type StreamClaims struct {
	Channel string `json:"channel"` // "admin" or "merchant"
	Subject string `json:"sub"`     // merchant id, empty for admin
	jwt.RegisteredClaims
}

// IssueStreamToken mints a token valid for ttl.
func IssueStreamToken(secret, channel, subject string, ttl time.Duration) (string, error) {
	claims := StreamClaims{
		Channel: channel,
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyStreamToken parses and validates a stream token.
func VerifyStreamToken(secret, tokenString string) (*StreamClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StreamClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*StreamClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid stream token")
	}
	return claims, nil
}
