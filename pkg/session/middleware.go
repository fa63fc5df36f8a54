package session

import (
	"strings"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
)

const contextKey = "portal-session"

// Resolve parses an Authorization: Bearer token, when present, into a
// Session stored on the echo context. Requests without a token pass
// through anonymously; the role gates decide what they may do.
func Resolve(issuer *Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if token, found := strings.CutPrefix(header, "Bearer "); found {
				sess, err := issuer.Verify(token)
				if err != nil {
					return apierr.Unauthorized("session token is invalid or expired. log in again.")
				}
				c.Set(contextKey, sess)
			}
			return next(c)
		}
	}
}

// FromContext returns the session resolved for this request, or nil for
// anonymous requests.
func FromContext(c echo.Context) *Session {
	if sess, ok := c.Get(contextKey).(*Session); ok {
		return sess
	}
	return nil
}

// Require rejects requests whose session does not carry one of the roles.
// Admin always passes.
func Require(roles ...kdb.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := FromContext(c)
			if sess == nil {
				return apierr.Unauthorized("log in first.")
			}
			if !sess.Allows(roles...) {
				return apierr.Forbidden("your role does not allow this operation.")
			}
			return next(c)
		}
	}
}
