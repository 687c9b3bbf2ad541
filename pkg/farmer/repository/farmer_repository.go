package repository

import "farmlink/entities"

type FarmerRepository interface {
	ListFarmers() []entities.Farmer
	FindFarmer(id int) (entities.Farmer, bool)
	// InsertFarmer assigns the next sequential id and appends.
	InsertFarmer(f entities.Farmer) entities.Farmer
	// ReplaceFarmer swaps the stored record matching f.ID; false on miss.
	ReplaceFarmer(f entities.Farmer) bool

	ListUpdates() []entities.FarmerUpdate
	// InsertUpdate assigns the next sequential id and prepends.
	InsertUpdate(u entities.FarmerUpdate) entities.FarmerUpdate

	ListCrops() []entities.ActiveCrop
	// InsertCrop assigns the next sequential id and prepends.
	InsertCrop(c entities.ActiveCrop) entities.ActiveCrop
}
