package repositoryImp

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"farmlink/entities"
	"farmlink/pkg/consumer/repository"
)

// consumerRepo holds one consumer's order book (most-recent-first) and
// singleton profile in memory. The order counter continues past the highest
// seeded ORD-### suffix.
type consumerRepo struct {
	mu      sync.RWMutex
	orders  []entities.ConsumerOrder
	profile entities.ConsumerProfile
	nextNum int
}

func New(orders []entities.ConsumerOrder, profile entities.ConsumerProfile) repository.ConsumerRepository {
	return &consumerRepo{
		orders:  orders,
		profile: profile,
		nextNum: nextOrderNum(orders),
	}
}

func nextOrderNum(orders []entities.ConsumerOrder) int {
	next := 1
	for _, o := range orders {
		if n, ok := orderNum(o.ID); ok && n >= next {
			next = n + 1
		}
	}
	return next
}

func orderNum(id string) (int, bool) {
	suffix, ok := strings.CutPrefix(id, "ORD-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r *consumerRepo) ListOrders() []entities.ConsumerOrder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.ConsumerOrder, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *consumerRepo) FindOrder(id string) (entities.ConsumerOrder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entities.ConsumerOrder{}, false
}

func (r *consumerRepo) InsertOrder(o entities.ConsumerOrder) entities.ConsumerOrder {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = fmt.Sprintf("ORD-%03d", r.nextNum)
	r.nextNum++
	r.orders = append([]entities.ConsumerOrder{o}, r.orders...)
	return o
}

func (r *consumerRepo) Profile() entities.ConsumerProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile
}

func (r *consumerRepo) SaveProfile(p entities.ConsumerProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = p
}
