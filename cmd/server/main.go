package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmlink/config"
	"farmlink/router"
	"farmlink/seed"

	"farmlink/pkg/appstate"
	stateCtrlImp "farmlink/pkg/appstate/controllerImp"

	authCtrlImp "farmlink/pkg/auth/controllerImp"
	healthCtrlImp "farmlink/pkg/health/controllerImp"

	farmerCtrlImp "farmlink/pkg/farmer/controllerImp"
	farmerRepoImp "farmlink/pkg/farmer/repositoryImp"
	farmerSvcImp "farmlink/pkg/farmer/serviceImp"

	consumerCtrlImp "farmlink/pkg/consumer/controllerImp"
	consumerRepoImp "farmlink/pkg/consumer/repositoryImp"
	consumerSvcImp "farmlink/pkg/consumer/serviceImp"

	communityCtrlImp "farmlink/pkg/community/controllerImp"
	communityRepoImp "farmlink/pkg/community/repositoryImp"
	communitySvcImp "farmlink/pkg/community/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Printf("WARN: timezone %q: %v", cfg.Timezone, err)
	}

	// 2) Ledgers, bootstrapped from seed data
	fRepo := farmerRepoImp.New(seed.Farmers(), seed.FarmerUpdates(), seed.ActiveCrops())
	cRepo := consumerRepoImp.New(seed.ConsumerOrders(), seed.ConsumerProfile())
	hRepo := communityRepoImp.New(
		seed.Contributions(),
		seed.CommunityOrders(),
		seed.CommunityProfile(),
		seed.ConsumerProfiles(),
		seed.NewConsumers(),
	)

	fSvc := farmerSvcImp.NewFarmerService(fRepo)
	cSvc := consumerSvcImp.NewConsumerService(cRepo)
	hSvc := communitySvcImp.NewCommunityService(hRepo)

	// 3) Composite accessor for the dashboard views
	state := appstate.New(fSvc, cSvc, hSvc)

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 5) Controllers
	fCtrl := farmerCtrlImp.New(fSvc)
	cCtrl := consumerCtrlImp.New(cSvc)
	hCtrl := communityCtrlImp.New(hSvc)
	authCtrl := authCtrlImp.NewAuthController(cfg.DefaultRole)
	stCtrl := stateCtrlImp.New(state)
	healthCtrl := healthCtrlImp.NewHealthCtrl(state)

	// 6) Router
	r := router.New(e, cfg.DefaultRole, fCtrl, cCtrl, hCtrl, authCtrl, stCtrl, healthCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
