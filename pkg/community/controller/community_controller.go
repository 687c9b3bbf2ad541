package controller

import "github.com/labstack/echo/v4"

type CommunityController interface {
	ListContributions(c echo.Context) error
	Fulfill(c echo.Context) error
	ListOrders(c echo.Context) error
	Aggregate(c echo.Context) error
	CreateOrder(c echo.Context) error
	PatchOrderStatus(c echo.Context) error
	GetProfile(c echo.Context) error
	PatchProfile(c echo.Context) error
	ListConsumers(c echo.Context) error
	GetConsumer(c echo.Context) error
	ListNewConsumers(c echo.Context) error
	Demand(c echo.Context) error
	DemandExport(c echo.Context) error
}
