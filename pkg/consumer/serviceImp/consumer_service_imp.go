package serviceImp

import (
	"time"

	"farmlink/entities"
	repo "farmlink/pkg/consumer/repository"
	"farmlink/pkg/consumer/service"
	"farmlink/pkg/village"
)

type consumerSvc struct{ r repo.ConsumerRepository }

func NewConsumerService(r repo.ConsumerRepository) service.ConsumerService {
	return &consumerSvc{r}
}

func (s *consumerSvc) Orders() []entities.ConsumerOrder { return s.r.ListOrders() }

func (s *consumerSvc) AddOrder(items []entities.OrderItem) entities.ConsumerOrder {
	today := time.Now()
	copied := make([]entities.OrderItem, len(items))
	copy(copied, items)
	return s.r.InsertOrder(entities.ConsumerOrder{
		Date:         today.Format(entities.DisplayDate),
		Items:        copied,
		Status:       entities.StatusProcessing,
		DeliveryDate: today.AddDate(0, 0, 7).Format(entities.DisplayDate),
	})
}

func (s *consumerSvc) Reorder(orderID string) (entities.ConsumerOrder, bool) {
	prev, ok := s.r.FindOrder(orderID)
	if !ok {
		return entities.ConsumerOrder{}, false
	}
	return s.AddOrder(prev.Items), true
}

func (s *consumerSvc) Profile() entities.ConsumerProfile { return s.r.Profile() }

func (s *consumerSvc) UpdateProfile(p service.ProfilePatch) entities.ConsumerProfile {
	cur := s.r.Profile()
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Email != nil {
		cur.Email = *p.Email
	}
	if p.Phone != nil {
		cur.Phone = *p.Phone
	}
	if p.Address != nil {
		cur.Address = *p.Address
		// moving villages moves communities
		if ref, ok := village.Derive(*p.Address); ok {
			cur.Community = ref.Name
			cur.CommunityID = ref.ID
		}
	}
	s.r.SaveProfile(cur)
	return cur
}
