package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmlink/pkg/appstate"
)

var appStart = time.Now()

type HealthCtrl struct {
	state *appstate.State
}

func NewHealthCtrl(state *appstate.State) *HealthCtrl { return &HealthCtrl{state: state} }

// Health reports uptime and per-ledger record counts. With no external
// dependencies the service is healthy whenever it can answer.
func (h *HealthCtrl) Health(c echo.Context) error {
	resp := map[string]any{
		"status":     map[string]any{"ok": true},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"ledgers": map[string]int{
			"farmers":          len(h.state.Farmer.Farmers()),
			"farmer_updates":   len(h.state.Farmer.Updates()),
			"active_crops":     len(h.state.Farmer.Crops()),
			"consumer_orders":  len(h.state.Consumer.Orders()),
			"contributions":    len(h.state.Community.Contributions()),
			"community_orders": len(h.state.Community.Orders()),
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(http.StatusOK, resp)
}
