package controller

import "github.com/labstack/echo/v4"

type FarmerController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Patch(c echo.Context) error
	ListUpdates(c echo.Context) error
	CreateUpdate(c echo.Context) error
	ListCrops(c echo.Context) error
	CreateCrop(c echo.Context) error
}
