package router

import (
	"github.com/labstack/echo/v4"

	stateCtrlImp "farmlink/pkg/appstate/controllerImp"
	authCtrl "farmlink/pkg/auth/controller"
	communityCtrl "farmlink/pkg/community/controller"
	consumerCtrl "farmlink/pkg/consumer/controller"
	farmerCtrl "farmlink/pkg/farmer/controller"
	healthCtrlImp "farmlink/pkg/health/controllerImp"
	"farmlink/pkg/middleware"
)

func New(
	e *echo.Echo,
	defaultRole string,
	farmer farmerCtrl.FarmerController,
	consumer consumerCtrl.ConsumerController,
	community communityCtrl.CommunityController,
	auth authCtrl.AuthController,
	state *stateCtrlImp.StateCtrl,
	health *healthCtrlImp.HealthCtrl,
) *echo.Echo {
	e.Use(middleware.RoleLogin(defaultRole))
	api := e.Group("")

	api.GET("/whoami", auth.WhoAmI)
	api.GET("/devlogin", auth.SelectRole)
	e.GET("/health", health.Health)
	api.GET("/state", state.Snapshot)

	// agent
	api.GET("/farmers", farmer.List)
	api.POST("/farmers", farmer.Create)
	api.GET("/farmers/:id", farmer.Get)
	api.PATCH("/farmers/:id", farmer.Patch)
	api.GET("/updates", farmer.ListUpdates)
	api.POST("/updates", farmer.CreateUpdate)
	api.GET("/crops", farmer.ListCrops)
	api.POST("/crops", farmer.CreateCrop)

	// consumer
	api.GET("/orders", consumer.ListOrders)
	api.POST("/orders", consumer.CreateOrder)
	api.POST("/orders/:id/reorder", consumer.Reorder)
	api.GET("/profile", consumer.GetProfile)
	api.PATCH("/profile", consumer.PatchProfile)

	// community head
	g := e.Group("/community")
	g.GET("/contributions", community.ListContributions)
	g.POST("/contributions/:id/fulfill", community.Fulfill)
	g.GET("/orders", community.ListOrders)
	g.POST("/orders", community.CreateOrder)
	g.POST("/orders/aggregate", community.Aggregate)
	g.PATCH("/orders/:id/status", community.PatchOrderStatus)
	g.GET("/profile", community.GetProfile)
	g.PATCH("/profile", community.PatchProfile)
	g.GET("/consumers", community.ListConsumers)
	g.GET("/consumers/new", community.ListNewConsumers)
	g.GET("/consumers/:id", community.GetConsumer)
	g.GET("/demand", community.Demand)
	g.GET("/demand/export", community.DemandExport)
	return e
}
