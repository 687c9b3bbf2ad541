package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmlink/pkg/auth/controller"
	"farmlink/pkg/middleware"
)

type authCtrl struct{ defaultRole string }

func NewAuthController(defaultRole string) controller.AuthController {
	return &authCtrl{defaultRole: defaultRole}
}

func (h *authCtrl) SelectRole(c echo.Context) error {
	role := c.QueryParam("role")
	if !middleware.ValidRole(role) {
		role = h.defaultRole
	}
	c.SetCookie(&http.Cookie{Name: middleware.RoleCookie, Value: role, Path: "/"})
	return c.JSON(http.StatusOK, map[string]string{"role": role})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	v := c.Get("role")
	role, _ := v.(string)
	return c.JSON(http.StatusOK, map[string]string{"role": role})
}
