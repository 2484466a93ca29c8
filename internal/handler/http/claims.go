package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/auth"
)

// claimsFromRequest pulls the tenant identity off the verified token.
// AuthRequired has already rejected unverified requests by the time any
// handler calls this.
func claimsFromRequest(r *http.Request) (userID, mobile string, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", auth.ErrInvalidToken
	}

	mobile, _ = claims["mobile"].(string)

	return userID, mobile, nil
}
