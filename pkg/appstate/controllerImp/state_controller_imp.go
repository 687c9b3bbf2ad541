package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmlink/pkg/appstate"
)

type StateCtrl struct{ state *appstate.State }

func New(state *appstate.State) *StateCtrl { return &StateCtrl{state} }

func (h *StateCtrl) Snapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, h.state.Snapshot())
}
