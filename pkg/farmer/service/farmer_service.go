package service

import "farmlink/entities"

// FarmerPatch carries partial farmer edits; nil fields are left unchanged.
type FarmerPatch struct {
	Name       *string  `json:"name"`
	Village    *string  `json:"village"`
	LandSize   *string  `json:"land_size"`
	Crops      []string `json:"crops"`
	LastUpdate *string  `json:"last_update"`
	Notes      *string  `json:"notes"`
}

type FarmerService interface {
	Farmers() []entities.Farmer
	Farmer(id int) (entities.Farmer, bool)
	AddFarmer(f entities.Farmer) entities.Farmer
	// UpdateFarmer merges the patch into the matching farmer; false on miss.
	UpdateFarmer(id int, p FarmerPatch) (entities.Farmer, bool)

	Updates() []entities.FarmerUpdate
	AddFarmerUpdate(u entities.FarmerUpdate) entities.FarmerUpdate

	Crops() []entities.ActiveCrop
	AddCrop(c entities.ActiveCrop) entities.ActiveCrop
}
