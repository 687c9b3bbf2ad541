package repositoryImp

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"farmlink/entities"
	"farmlink/pkg/community/repository"
)

// communityRepo holds the community head's collections in memory: the
// contribution pool, the community order book (most-recent-first), the
// community profile, and the consumer directory. The order counter continues
// past the highest seeded CO-### suffix.
type communityRepo struct {
	mu            sync.RWMutex
	contributions []entities.Contribution
	orders        []entities.CommunityOrder
	profile       entities.CommunityProfile
	consumers     []entities.ConsumerProfile
	newConsumers  []entities.NewConsumer
	current       *entities.ConsumerProfile
	nextNum       int
}

func New(
	contributions []entities.Contribution,
	orders []entities.CommunityOrder,
	profile entities.CommunityProfile,
	consumers []entities.ConsumerProfile,
	newConsumers []entities.NewConsumer,
) repository.CommunityRepository {
	return &communityRepo{
		contributions: contributions,
		orders:        orders,
		profile:       profile,
		consumers:     consumers,
		newConsumers:  newConsumers,
		nextNum:       nextOrderNum(orders),
	}
}

func nextOrderNum(orders []entities.CommunityOrder) int {
	next := 1
	for _, o := range orders {
		suffix, ok := strings.CutPrefix(o.ID, "CO-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n >= next {
			next = n + 1
		}
	}
	return next
}

func (r *communityRepo) ListContributions() []entities.Contribution {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Contribution, len(r.contributions))
	copy(out, r.contributions)
	return out
}

func (r *communityRepo) FindContribution(id string) (entities.Contribution, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contributions {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Contribution{}, false
}

func (r *communityRepo) ReplaceContribution(c entities.Contribution) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.contributions {
		if r.contributions[i].ID == c.ID {
			r.contributions[i] = c
			return true
		}
	}
	return false
}

func (r *communityRepo) ListOrders() []entities.CommunityOrder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.CommunityOrder, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *communityRepo) FindOrder(id string) (entities.CommunityOrder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entities.CommunityOrder{}, false
}

func (r *communityRepo) InsertOrder(o entities.CommunityOrder) entities.CommunityOrder {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = fmt.Sprintf("CO-%03d", r.nextNum)
	r.nextNum++
	r.orders = append([]entities.CommunityOrder{o}, r.orders...)
	return o
}

func (r *communityRepo) ReplaceOrder(o entities.CommunityOrder) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == o.ID {
			r.orders[i] = o
			return true
		}
	}
	return false
}

func (r *communityRepo) Profile() entities.CommunityProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile
}

func (r *communityRepo) SaveProfile(p entities.CommunityProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = p
}

func (r *communityRepo) ListConsumers() []entities.ConsumerProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.ConsumerProfile, len(r.consumers))
	copy(out, r.consumers)
	return out
}

func (r *communityRepo) FindConsumer(id string) (entities.ConsumerProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.consumers {
		if c.ID == id {
			return c, true
		}
	}
	return entities.ConsumerProfile{}, false
}

func (r *communityRepo) ListNewConsumers() []entities.NewConsumer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.NewConsumer, len(r.newConsumers))
	copy(out, r.newConsumers)
	return out
}

func (r *communityRepo) CurrentConsumer() (entities.ConsumerProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return entities.ConsumerProfile{}, false
	}
	return *r.current, true
}

func (r *communityRepo) SetCurrentConsumer(p *entities.ConsumerProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = p
}
