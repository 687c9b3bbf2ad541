package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmlink/entities"
	"farmlink/pkg/consumer/controller"
	"farmlink/pkg/consumer/service"
)

type ConsumerCtrl struct{ svc service.ConsumerService }

func New(svc service.ConsumerService) controller.ConsumerController { return &ConsumerCtrl{svc} }

type createOrderReq struct {
	Items []entities.OrderItem `json:"items"`
}

func (h *ConsumerCtrl) ListOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Orders())
}

func (h *ConsumerCtrl) CreateOrder(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "items are required"})
	}
	return c.JSON(http.StatusCreated, h.svc.AddOrder(req.Items))
}

func (h *ConsumerCtrl) Reorder(c echo.Context) error {
	o, ok := h.svc.Reorder(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *ConsumerCtrl) GetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Profile())
}

func (h *ConsumerCtrl) PatchProfile(c echo.Context) error {
	var p service.ProfilePatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	return c.JSON(http.StatusOK, h.svc.UpdateProfile(p))
}
