package repositoryImp

import (
	"sync"

	"farmlink/entities"
	"farmlink/pkg/farmer/repository"
)

// farmerRepo keeps the agent-facing collections in memory for the process
// lifetime. Counters start past the highest seeded id so ids stay unique even
// if the seed is non-contiguous. Reads hand out copies.
type farmerRepo struct {
	mu      sync.RWMutex
	farmers []entities.Farmer
	updates []entities.FarmerUpdate // most-recent-first
	crops   []entities.ActiveCrop   // most-recent-first

	nextFarmerID int
	nextUpdateID int
	nextCropID   int
}

func New(farmers []entities.Farmer, updates []entities.FarmerUpdate, crops []entities.ActiveCrop) repository.FarmerRepository {
	r := &farmerRepo{farmers: farmers, updates: updates, crops: crops}
	r.nextFarmerID = 1
	for _, f := range farmers {
		if f.ID >= r.nextFarmerID {
			r.nextFarmerID = f.ID + 1
		}
	}
	r.nextUpdateID = 1
	for _, u := range updates {
		if u.ID >= r.nextUpdateID {
			r.nextUpdateID = u.ID + 1
		}
	}
	r.nextCropID = 1
	for _, c := range crops {
		if c.ID >= r.nextCropID {
			r.nextCropID = c.ID + 1
		}
	}
	return r
}

func (r *farmerRepo) ListFarmers() []entities.Farmer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Farmer, len(r.farmers))
	copy(out, r.farmers)
	return out
}

func (r *farmerRepo) FindFarmer(id int) (entities.Farmer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.farmers {
		if f.ID == id {
			return f, true
		}
	}
	return entities.Farmer{}, false
}

func (r *farmerRepo) InsertFarmer(f entities.Farmer) entities.Farmer {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = r.nextFarmerID
	r.nextFarmerID++
	r.farmers = append(r.farmers, f)
	return f
}

func (r *farmerRepo) ReplaceFarmer(f entities.Farmer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.farmers {
		if r.farmers[i].ID == f.ID {
			r.farmers[i] = f
			return true
		}
	}
	return false
}

func (r *farmerRepo) ListUpdates() []entities.FarmerUpdate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.FarmerUpdate, len(r.updates))
	copy(out, r.updates)
	return out
}

func (r *farmerRepo) InsertUpdate(u entities.FarmerUpdate) entities.FarmerUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextUpdateID
	r.nextUpdateID++
	r.updates = append([]entities.FarmerUpdate{u}, r.updates...)
	return u
}

func (r *farmerRepo) ListCrops() []entities.ActiveCrop {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.ActiveCrop, len(r.crops))
	copy(out, r.crops)
	return out
}

func (r *farmerRepo) InsertCrop(c entities.ActiveCrop) entities.ActiveCrop {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextCropID
	r.nextCropID++
	r.crops = append([]entities.ActiveCrop{c}, r.crops...)
	return c
}
