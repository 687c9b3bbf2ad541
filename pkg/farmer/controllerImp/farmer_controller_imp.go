package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmlink/entities"
	"farmlink/pkg/farmer/controller"
	"farmlink/pkg/farmer/service"
)

func nowDisplay() string { return time.Now().Format(entities.DisplayDate) }

type FarmerCtrl struct{ svc service.FarmerService }

func New(svc service.FarmerService) controller.FarmerController { return &FarmerCtrl{svc} }

type createFarmerReq struct {
	Name     string   `json:"name"`
	Village  string   `json:"village"`
	LandSize string   `json:"land_size"`
	Crops    []string `json:"crops"`
	Notes    string   `json:"notes"`
}

type createUpdateReq struct {
	FarmerID int                     `json:"farmer_id"`
	Date     string                  `json:"date"`
	Crops    []entities.CropDelivery `json:"crops"`
	Notes    string                  `json:"notes"`
}

type createCropReq struct {
	FarmerID         int    `json:"farmer_id"`
	CropName         string `json:"crop_name"`
	GrowthStage      string `json:"growth_stage"`
	ExpectedQuantity string `json:"expected_quantity"`
	ExpectedHarvest  string `json:"expected_harvest_date"`
	Notes            string `json:"notes"`
}

func (h *FarmerCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Farmers())
}

func (h *FarmerCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, ok := h.svc.Farmer(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farmer not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmerCtrl) Create(c echo.Context) error {
	var req createFarmerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	f := h.svc.AddFarmer(entities.Farmer{
		Name:     req.Name,
		Village:  req.Village,
		LandSize: req.LandSize,
		Crops:    req.Crops,
		Notes:    req.Notes,
	})
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmerCtrl) Patch(c echo.Context) error {
	// forms submit the id as a string; coerce before lookup
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	var p service.FarmerPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, ok := h.svc.UpdateFarmer(id, p)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farmer not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmerCtrl) ListUpdates(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Updates())
}

func (h *FarmerCtrl) CreateUpdate(c echo.Context) error {
	var req createUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Date == "" {
		req.Date = nowDisplay()
	}
	u := h.svc.AddFarmerUpdate(entities.FarmerUpdate{
		FarmerID: req.FarmerID,
		Date:     req.Date,
		Crops:    req.Crops,
		Notes:    req.Notes,
	})
	return c.JSON(http.StatusCreated, u)
}

func (h *FarmerCtrl) ListCrops(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Crops())
}

func (h *FarmerCtrl) CreateCrop(c echo.Context) error {
	var req createCropReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop := h.svc.AddCrop(entities.ActiveCrop{
		FarmerID:         req.FarmerID,
		CropName:         req.CropName,
		GrowthStage:      req.GrowthStage,
		ExpectedQuantity: req.ExpectedQuantity,
		ExpectedHarvest:  req.ExpectedHarvest,
		Notes:            req.Notes,
	})
	return c.JSON(http.StatusCreated, crop)
}
