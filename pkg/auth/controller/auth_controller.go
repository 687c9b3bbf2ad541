package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	SelectRole(c echo.Context) error
	WhoAmI(c echo.Context) error
}
