package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlink/entities"
	"farmlink/pkg/farmer/repositoryImp"
	"farmlink/pkg/farmer/service"
	"farmlink/seed"
)

func newSvc() service.FarmerService {
	return NewFarmerService(repositoryImp.New(seed.Farmers(), seed.FarmerUpdates(), seed.ActiveCrops()))
}

func emptySvc() service.FarmerService {
	return NewFarmerService(repositoryImp.New(nil, nil, nil))
}

func TestAddFarmerSequentialIDs(t *testing.T) {
	s := emptySvc()
	a := s.AddFarmer(entities.Farmer{Name: "Sita Devi", Village: "A"})
	b := s.AddFarmer(entities.Farmer{Name: "Mohan Singh", Village: "B"})
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestAddFarmerContinuesSeedIDs(t *testing.T) {
	s := newSvc()
	f := s.AddFarmer(entities.Farmer{Name: "Kiran Yadav", Village: "C"})
	assert.Equal(t, 6, f.ID)
}

func TestAddFarmerDefaults(t *testing.T) {
	s := emptySvc()
	f := s.AddFarmer(entities.Farmer{Name: "Kiran Yadav"})
	assert.Equal(t, []string{}, f.Crops)
	assert.Equal(t, time.Now().Format(entities.DisplayDate), f.LastUpdate)

	// caller-supplied values win over defaults
	g := s.AddFarmer(entities.Farmer{Name: "Asha Rani", Crops: []string{"Rice"}, LastUpdate: "April 1, 2025"})
	assert.Equal(t, []string{"Rice"}, g.Crops)
	assert.Equal(t, "April 1, 2025", g.LastUpdate)
}

func TestUpdateFarmerMerge(t *testing.T) {
	s := newSvc()
	notes := "Shifted to drip irrigation."
	got, ok := s.UpdateFarmer(2, service.FarmerPatch{Notes: &notes})
	require.True(t, ok)
	assert.Equal(t, "Shifted to drip irrigation.", got.Notes)
	assert.Equal(t, "Mohan Singh", got.Name)
	assert.Equal(t, "B", got.Village)
}

func TestUpdateFarmerEmptyPatchIsIdentity(t *testing.T) {
	s := newSvc()
	before, ok := s.Farmer(3)
	require.True(t, ok)
	after, ok := s.UpdateFarmer(3, service.FarmerPatch{})
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestUpdateFarmerMiss(t *testing.T) {
	s := newSvc()
	_, ok := s.UpdateFarmer(99, service.FarmerPatch{})
	assert.False(t, ok)
}

func TestAddFarmerUpdateCascade(t *testing.T) {
	s := newSvc()
	u := s.AddFarmerUpdate(entities.FarmerUpdate{
		FarmerID: 1,
		Date:     "April 5, 2025",
		Crops:    []entities.CropDelivery{{Name: "Rice", Quantity: 5}},
		Notes:    "Fresh harvest",
	})
	assert.Equal(t, 4, u.ID)
	assert.Equal(t, "Sita Devi", u.FarmerName)

	// most-recent-first ordering
	assert.Equal(t, u.ID, s.Updates()[0].ID)

	f, ok := s.Farmer(1)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"Wheat", "Chili", "Rice"}, f.Crops)
	assert.Equal(t, "April 5, 2025", f.LastUpdate)
}

func TestAddFarmerUpdateDeduplicatesCrops(t *testing.T) {
	s := newSvc()
	s.AddFarmerUpdate(entities.FarmerUpdate{
		FarmerID: 1,
		Date:     "April 6, 2025",
		Crops:    []entities.CropDelivery{{Name: "Wheat", Quantity: 8}},
	})
	f, _ := s.Farmer(1)
	assert.Equal(t, []string{"Wheat", "Chili"}, f.Crops)
}

func TestAddFarmerUpdateNoCropsNoCascade(t *testing.T) {
	s := newSvc()
	before, _ := s.Farmer(2)
	s.AddFarmerUpdate(entities.FarmerUpdate{FarmerID: 2, Date: "April 6, 2025", Notes: "Field visit"})
	after, _ := s.Farmer(2)
	assert.Equal(t, before, after)
}

func TestAddFarmerUpdateUnknownFarmer(t *testing.T) {
	s := newSvc()
	u := s.AddFarmerUpdate(entities.FarmerUpdate{
		FarmerID: 42,
		Date:     "April 6, 2025",
		Crops:    []entities.CropDelivery{{Name: "Rice", Quantity: 3}},
	})
	assert.Equal(t, "Unknown", u.FarmerName)
	// cascade silently skipped, update still recorded
	assert.Equal(t, u.ID, s.Updates()[0].ID)
}

func TestAddCrop(t *testing.T) {
	s := newSvc()
	c := s.AddCrop(entities.ActiveCrop{
		FarmerID:         4,
		CropName:         "Carrot",
		GrowthStage:      entities.StageSeedling,
		ExpectedQuantity: "12",
	})
	assert.Equal(t, 4, c.ID)
	assert.Equal(t, "Lata Kumari", c.FarmerName)
	assert.Equal(t, c.ID, s.Crops()[0].ID)

	f, _ := s.Farmer(4)
	assert.ElementsMatch(t, []string{"Onion", "Potato", "Carrot"}, f.Crops)
	assert.Equal(t, time.Now().Format(entities.DisplayDate), f.LastUpdate)
}

func TestAddCropUnknownFarmer(t *testing.T) {
	s := newSvc()
	c := s.AddCrop(entities.ActiveCrop{FarmerID: 42, CropName: "Carrot"})
	assert.Equal(t, "Unknown", c.FarmerName)
}
