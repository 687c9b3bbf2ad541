package serviceImp

import (
	"math"
	"strconv"
	"strings"
	"time"

	"farmlink/entities"
	repo "farmlink/pkg/community/repository"
	"farmlink/pkg/community/service"
	"farmlink/pkg/village"
)

type communitySvc struct{ r repo.CommunityRepository }

func NewCommunityService(r repo.CommunityRepository) service.CommunityService {
	return &communitySvc{r}
}

func (s *communitySvc) Contributions() []entities.Contribution { return s.r.ListContributions() }

func (s *communitySvc) FulfillContribution(id string) bool {
	c, ok := s.r.FindContribution(id)
	if !ok {
		return false
	}
	c.Status = entities.ContributionFulfilled
	c.Fulfilled = true
	return s.r.ReplaceContribution(c)
}

func (s *communitySvc) Orders() []entities.CommunityOrder { return s.r.ListOrders() }

func (s *communitySvc) CreateCommunityOrder() (entities.CommunityOrder, bool) {
	var pending []entities.Contribution
	for _, c := range s.r.ListContributions() {
		if !c.Fulfilled {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		return entities.CommunityOrder{}, false
	}

	order := s.insertOrder(mergeItems(pending))
	for _, c := range pending {
		s.FulfillContribution(c.ID)
	}
	return order, true
}

func (s *communitySvc) AddCommunityOrder(items []entities.OrderItem) entities.CommunityOrder {
	copied := make([]entities.OrderItem, len(items))
	copy(copied, items)
	return s.insertOrder(copied)
}

func (s *communitySvc) insertOrder(items []entities.OrderItem) entities.CommunityOrder {
	today := time.Now()
	return s.r.InsertOrder(entities.CommunityOrder{
		Date:         today.Format(entities.DisplayDate),
		Items:        items,
		Status:       entities.StatusProcessing,
		DeliveryDate: today.AddDate(0, 0, 7).Format(entities.DisplayDate),
	})
}

func (s *communitySvc) UpdateOrderStatus(id, status string) (entities.CommunityOrder, bool) {
	o, ok := s.r.FindOrder(id)
	if !ok {
		return entities.CommunityOrder{}, false
	}
	o.Status = status
	s.r.ReplaceOrder(o)
	return o, true
}

func (s *communitySvc) Profile() entities.CommunityProfile { return s.r.Profile() }

func (s *communitySvc) UpdateProfile(p service.CommunityPatch) entities.CommunityProfile {
	cur := s.r.Profile()
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Region != nil {
		cur.Region = *p.Region
	}
	if p.Head != nil {
		cur.Head = *p.Head
	}
	if p.Agent != nil {
		cur.Agent = *p.Agent
	}
	if p.Address != nil {
		cur.Address = *p.Address
		if ref, ok := village.Derive(*p.Address); ok {
			// custom collective names are preserved; only village-styled
			// names follow the address
			if strings.Contains(cur.Name, "Village") {
				cur.Name = ref.Name + " Farmers Collective"
			}
			cur.ID = ref.ID
		}
	}
	s.r.SaveProfile(cur)
	return cur
}

func (s *communitySvc) Consumers() []entities.ConsumerProfile { return s.r.ListConsumers() }

func (s *communitySvc) ConsumerDetails(id string) (entities.ConsumerProfile, bool) {
	c, ok := s.r.FindConsumer(id)
	if !ok {
		s.r.SetCurrentConsumer(nil)
		return entities.ConsumerProfile{}, false
	}
	s.r.SetCurrentConsumer(&c)
	return c, true
}

func (s *communitySvc) CurrentConsumer() (entities.ConsumerProfile, bool) {
	return s.r.CurrentConsumer()
}

func (s *communitySvc) NewConsumers() []entities.NewConsumer { return s.r.ListNewConsumers() }

func (s *communitySvc) DemandSummary() []service.DemandLine {
	var pending []entities.Contribution
	for _, c := range s.r.ListContributions() {
		if !c.Fulfilled {
			pending = append(pending, c)
		}
	}
	lines := make([]service.DemandLine, 0)
	for _, item := range mergeItems(pending) {
		lines = append(lines, service.DemandLine{Crop: item.Crop, Quantity: item.Quantity})
	}
	return lines
}

// mergeItems unions contribution line items by crop name, summing decimal
// quantities and re-appending the kg suffix. First-seen crop order is kept.
func mergeItems(contributions []entities.Contribution) []entities.OrderItem {
	items := make([]entities.OrderItem, 0)
	index := map[string]int{}
	for _, c := range contributions {
		for _, item := range c.Items {
			if i, ok := index[item.Crop]; ok {
				sum := parseQuantity(items[i].Quantity) + parseQuantity(item.Quantity)
				items[i].Quantity = formatQuantity(sum)
			} else {
				index[item.Crop] = len(items)
				items = append(items, entities.OrderItem{
					Crop:     item.Crop,
					Quantity: formatQuantity(parseQuantity(item.Quantity)),
				})
			}
		}
	}
	return items
}

// parseQuantity reads the leading decimal of a quantity string ("5 kg" -> 5).
// Strings with no leading number come back NaN; the NaN flows into displayed
// totals untouched, matching the dashboard's known behavior.
func parseQuantity(s string) float64 {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
	}
	f, err := strconv.ParseFloat(s[:j], 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64) + " kg"
}
