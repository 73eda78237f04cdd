package middleware

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// RequireAdmin ensures the request carries a superuser auth token.
func RequireAdmin(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindAuthRecordByToken(bearerToken(e), core.TokenTypeAuth)
		if err != nil || record == nil || !record.IsSuperuser() {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "admin authentication required"})
		}
		e.Auth = record
		return e.Next()
	}
}

// RequireMerchant ensures the request carries a merchant auth token and
// binds the merchant record to the request.
func RequireMerchant(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindAuthRecordByToken(bearerToken(e), core.TokenTypeAuth)
		if err != nil || record == nil || record.Collection().Name != "merchants" {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "merchant authentication required"})
		}
		e.Auth = record
		return e.Next()
	}
}

// bearerToken extracts the auth token from the Authorization header or
// the pb_auth cookie.
func bearerToken(e *core.RequestEvent) string {
	header := e.Request.Header.Get("Authorization")
	if header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := e.Request.Cookie("pb_auth"); err == nil {
		return cookie.Value
	}
	return ""
}
