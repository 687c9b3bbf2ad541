package serviceImp

import (
	"time"

	"farmlink/entities"
	repo "farmlink/pkg/farmer/repository"
	"farmlink/pkg/farmer/service"
)

type farmerSvc struct{ r repo.FarmerRepository }

func NewFarmerService(r repo.FarmerRepository) service.FarmerService { return &farmerSvc{r} }

func (s *farmerSvc) Farmers() []entities.Farmer { return s.r.ListFarmers() }

func (s *farmerSvc) Farmer(id int) (entities.Farmer, bool) { return s.r.FindFarmer(id) }

func (s *farmerSvc) AddFarmer(f entities.Farmer) entities.Farmer {
	if f.Crops == nil {
		f.Crops = []string{}
	}
	if f.LastUpdate == "" {
		f.LastUpdate = time.Now().Format(entities.DisplayDate)
	}
	return s.r.InsertFarmer(f)
}

func (s *farmerSvc) UpdateFarmer(id int, p service.FarmerPatch) (entities.Farmer, bool) {
	cur, ok := s.r.FindFarmer(id)
	if !ok {
		return entities.Farmer{}, false
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Village != nil {
		cur.Village = *p.Village
	}
	if p.LandSize != nil {
		cur.LandSize = *p.LandSize
	}
	if p.Crops != nil {
		cur.Crops = p.Crops
	}
	if p.LastUpdate != nil {
		cur.LastUpdate = *p.LastUpdate
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	s.r.ReplaceFarmer(cur)
	return cur, true
}

func (s *farmerSvc) Updates() []entities.FarmerUpdate { return s.r.ListUpdates() }

func (s *farmerSvc) AddFarmerUpdate(u entities.FarmerUpdate) entities.FarmerUpdate {
	farmer, found := s.r.FindFarmer(u.FarmerID)
	if u.FarmerName == "" {
		u.FarmerName = "Unknown"
		if found {
			u.FarmerName = farmer.Name
		}
	}
	if u.Crops == nil {
		u.Crops = []entities.CropDelivery{}
	}
	created := s.r.InsertUpdate(u)

	// A delivery update refreshes the farmer's crop set and last-update date.
	if found && len(u.Crops) > 0 {
		names := make([]string, 0, len(u.Crops))
		for _, c := range u.Crops {
			names = append(names, c.Name)
		}
		s.cascade(farmer, names, u.Date)
	}
	return created
}

func (s *farmerSvc) Crops() []entities.ActiveCrop { return s.r.ListCrops() }

func (s *farmerSvc) AddCrop(c entities.ActiveCrop) entities.ActiveCrop {
	farmer, found := s.r.FindFarmer(c.FarmerID)
	c.FarmerName = "Unknown"
	if found {
		c.FarmerName = farmer.Name
	}
	created := s.r.InsertCrop(c)

	if found {
		s.cascade(farmer, []string{c.CropName}, time.Now().Format(entities.DisplayDate))
	}
	return created
}

// cascade merges new crop names into the farmer's deduplicated crop set and
// stamps lastUpdate.
func (s *farmerSvc) cascade(farmer entities.Farmer, names []string, lastUpdate string) {
	merged := unionCrops(farmer.Crops, names)
	s.UpdateFarmer(farmer.ID, service.FarmerPatch{Crops: merged, LastUpdate: &lastUpdate})
}

func unionCrops(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing)+len(extra))
	out := make([]string, 0, len(existing)+len(extra))
	for _, c := range existing {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range extra {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
