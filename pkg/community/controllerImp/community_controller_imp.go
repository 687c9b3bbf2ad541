package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmlink/entities"
	"farmlink/pkg/community/controller"
	"farmlink/pkg/community/service"
	"farmlink/pkg/report"
)

type CommunityCtrl struct{ svc service.CommunityService }

func New(svc service.CommunityService) controller.CommunityController {
	return &CommunityCtrl{svc}
}

type createOrderReq struct {
	Items []entities.OrderItem `json:"items"`
}

type patchStatusReq struct {
	Status string `json:"status"`
}

func (h *CommunityCtrl) ListContributions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Contributions())
}

func (h *CommunityCtrl) Fulfill(c echo.Context) error {
	if !h.svc.FulfillContribution(c.Param("id")) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "contribution not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": entities.ContributionFulfilled})
}

func (h *CommunityCtrl) ListOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Orders())
}

func (h *CommunityCtrl) Aggregate(c echo.Context) error {
	order, ok := h.svc.CreateCommunityOrder()
	if !ok {
		return c.JSON(http.StatusConflict, map[string]string{"error": "no pending contributions"})
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *CommunityCtrl) CreateOrder(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "items are required"})
	}
	return c.JSON(http.StatusCreated, h.svc.AddCommunityOrder(req.Items))
}

func (h *CommunityCtrl) PatchOrderStatus(c echo.Context) error {
	var req patchStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !entities.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown status"})
	}
	o, ok := h.svc.UpdateOrderStatus(c.Param("id"), req.Status)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
	}
	return c.JSON(http.StatusOK, o)
}

func (h *CommunityCtrl) GetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Profile())
}

func (h *CommunityCtrl) PatchProfile(c echo.Context) error {
	var p service.CommunityPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	return c.JSON(http.StatusOK, h.svc.UpdateProfile(p))
}

func (h *CommunityCtrl) ListConsumers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Consumers())
}

func (h *CommunityCtrl) GetConsumer(c echo.Context) error {
	consumer, ok := h.svc.ConsumerDetails(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "consumer not found"})
	}
	return c.JSON(http.StatusOK, consumer)
}

func (h *CommunityCtrl) ListNewConsumers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.NewConsumers())
}

func (h *CommunityCtrl) Demand(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.DemandSummary())
}

func (h *CommunityCtrl) DemandExport(c echo.Context) error {
	f, err := report.DemandWorkbook(h.svc.Profile(), h.svc.DemandSummary())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="demand-summary.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
