package controller

import "github.com/labstack/echo/v4"

type ConsumerController interface {
	ListOrders(c echo.Context) error
	CreateOrder(c echo.Context) error
	Reorder(c echo.Context) error
	GetProfile(c echo.Context) error
	PatchProfile(c echo.Context) error
}
