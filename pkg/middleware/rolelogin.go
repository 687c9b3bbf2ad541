package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const RoleCookie = "FARMLINK_ROLE"

const (
	RoleAgent    = "agent"
	RoleConsumer = "consumer"
	RoleHead     = "head"
)

func ValidRole(r string) bool {
	return r == RoleAgent || r == RoleConsumer || r == RoleHead
}

// RoleLogin tags each request with the dashboard role from the session
// cookie, seeding the cookie from ?role= or the configured default. This is
// role selection for the SPA, not authentication.
func RoleLogin(defaultRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := ""
			if ck, err := c.Cookie(RoleCookie); err == nil && ValidRole(ck.Value) {
				role = ck.Value
			}
			if role == "" {
				if q := c.QueryParam("role"); ValidRole(q) {
					role = q
				} else {
					role = defaultRole
				}
				c.SetCookie(&http.Cookie{Name: RoleCookie, Value: role, Path: "/"})
			}
			c.Set("role", role)
			return next(c)
		}
	}
}
