package serviceImp

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlink/entities"
	"farmlink/pkg/community/repositoryImp"
	"farmlink/pkg/community/service"
	"farmlink/seed"
)

func newSvc() service.CommunityService {
	return NewCommunityService(repositoryImp.New(
		seed.Contributions(),
		seed.CommunityOrders(),
		seed.CommunityProfile(),
		seed.ConsumerProfiles(),
		seed.NewConsumers(),
	))
}

func svcWithContributions(contributions []entities.Contribution) service.CommunityService {
	return NewCommunityService(repositoryImp.New(
		contributions,
		seed.CommunityOrders(),
		seed.CommunityProfile(),
		seed.ConsumerProfiles(),
		seed.NewConsumers(),
	))
}

func TestCreateCommunityOrderAggregates(t *testing.T) {
	s := svcWithContributions([]entities.Contribution{
		{ID: "PO-001", Items: []entities.OrderItem{{Crop: "Tomato", Quantity: "5 kg"}}},
		{ID: "PO-002", Items: []entities.OrderItem{{Crop: "Tomato", Quantity: "3 kg"}}},
	})

	order, ok := s.CreateCommunityOrder()
	require.True(t, ok)
	assert.Equal(t, "CO-009", order.ID)
	assert.Equal(t, []entities.OrderItem{{Crop: "Tomato", Quantity: "8 kg"}}, order.Items)
	assert.Equal(t, entities.StatusProcessing, order.Status)
	assert.Equal(t, time.Now().Format(entities.DisplayDate), order.Date)
	assert.Equal(t, time.Now().AddDate(0, 0, 7).Format(entities.DisplayDate), order.DeliveryDate)

	for _, c := range s.Contributions() {
		assert.True(t, c.Fulfilled, "contribution %s", c.ID)
		assert.Equal(t, entities.ContributionFulfilled, c.Status)
	}
	assert.Equal(t, order.ID, s.Orders()[0].ID)
}

func TestCreateCommunityOrderMergesAcrossCrops(t *testing.T) {
	s := newSvc()
	order, ok := s.CreateCommunityOrder()
	require.True(t, ok)
	// seeded pending pool: 5+3 kg Tomato, 4 kg Onion, 2 kg Brinjal; the
	// fulfilled PO-004 is excluded
	assert.Equal(t, []entities.OrderItem{
		{Crop: "Tomato", Quantity: "8 kg"},
		{Crop: "Onion", Quantity: "4 kg"},
		{Crop: "Brinjal", Quantity: "2 kg"},
	}, order.Items)
}

func TestCreateCommunityOrderNothingPending(t *testing.T) {
	s := svcWithContributions([]entities.Contribution{
		{ID: "PO-001", Fulfilled: true, Status: entities.ContributionFulfilled},
	})
	_, ok := s.CreateCommunityOrder()
	assert.False(t, ok)
	assert.Len(t, s.Orders(), 2) // seed only
}

func TestCreateCommunityOrderDecimalSum(t *testing.T) {
	s := svcWithContributions([]entities.Contribution{
		{ID: "PO-001", Items: []entities.OrderItem{{Crop: "Tomato", Quantity: "2.5 kg"}}},
		{ID: "PO-002", Items: []entities.OrderItem{{Crop: "Tomato", Quantity: "1.25 kg"}}},
	})
	order, ok := s.CreateCommunityOrder()
	require.True(t, ok)
	assert.Equal(t, "3.75 kg", order.Items[0].Quantity)
}

func TestCreateCommunityOrderMalformedQuantity(t *testing.T) {
	s := svcWithContributions([]entities.Contribution{
		{ID: "PO-001", Items: []entities.OrderItem{{Crop: "Tomato", Quantity: "some kg"}}},
		{ID: "PO-002", Items: []entities.OrderItem{{Crop: "Tomato", Quantity: "3 kg"}}},
	})
	order, ok := s.CreateCommunityOrder()
	require.True(t, ok)
	// NaN propagates into the displayed total, unvalidated
	assert.Equal(t, "NaN kg", order.Items[0].Quantity)
}

func TestFulfillContribution(t *testing.T) {
	s := newSvc()
	require.True(t, s.FulfillContribution("PO-002"))
	for _, c := range s.Contributions() {
		if c.ID == "PO-002" {
			assert.True(t, c.Fulfilled)
			assert.Equal(t, entities.ContributionFulfilled, c.Status)
		}
	}
	assert.False(t, s.FulfillContribution("PO-999"))
}

func TestAddCommunityOrderDirect(t *testing.T) {
	s := newSvc()
	o := s.AddCommunityOrder([]entities.OrderItem{{Crop: "Potato", Quantity: "10 kg"}})
	assert.Equal(t, "CO-009", o.ID)
	assert.Equal(t, entities.StatusProcessing, o.Status)
	// direct orders leave the contribution pool alone
	pending := 0
	for _, c := range s.Contributions() {
		if !c.Fulfilled {
			pending++
		}
	}
	assert.Equal(t, 3, pending)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newSvc()
	o, ok := s.UpdateOrderStatus("CO-008", entities.StatusDelivered)
	require.True(t, ok)
	assert.Equal(t, entities.StatusDelivered, o.Status)
	got, _ := s.UpdateOrderStatus("CO-008", entities.StatusCancelled)
	assert.Equal(t, entities.StatusCancelled, got.Status)

	_, ok = s.UpdateOrderStatus("CO-999", entities.StatusDelivered)
	assert.False(t, ok)
}

func TestUpdateProfileVillageCascade(t *testing.T) {
	s := newSvc()
	addr := "Block 5, Village D, District Nashik"
	got := s.UpdateProfile(service.CommunityPatch{Address: &addr})
	assert.Equal(t, "Village D Farmers Collective", got.Name)
	assert.Equal(t, "COM-104", got.ID)
	assert.Equal(t, addr, got.Address)
}

func TestUpdateProfileCustomNamePreserved(t *testing.T) {
	s := newSvc()
	name := "Nashik Growers Guild"
	s.UpdateProfile(service.CommunityPatch{Name: &name})

	addr := "Block 5, Village D, District Nashik"
	got := s.UpdateProfile(service.CommunityPatch{Address: &addr})
	assert.Equal(t, "Nashik Growers Guild", got.Name)
	// id still follows the village
	assert.Equal(t, "COM-104", got.ID)
}

func TestUpdateProfileNoVillageToken(t *testing.T) {
	s := newSvc()
	addr := "Plot 9, Industrial Estate, Nashik"
	got := s.UpdateProfile(service.CommunityPatch{Address: &addr})
	assert.Equal(t, "Village B Farmers Collective", got.Name)
	assert.Equal(t, "COM-102", got.ID)
}

func TestConsumerDetails(t *testing.T) {
	s := newSvc()
	got, ok := s.ConsumerDetails("C-002")
	require.True(t, ok)
	assert.Equal(t, "Rakesh Mehta", got.Name)

	cur, ok := s.CurrentConsumer()
	require.True(t, ok)
	assert.Equal(t, got, cur)

	_, ok = s.ConsumerDetails("C-999")
	assert.False(t, ok)
	_, ok = s.CurrentConsumer()
	assert.False(t, ok, "miss clears the selection")
}

func TestDemandSummary(t *testing.T) {
	s := newSvc()
	assert.Equal(t, []service.DemandLine{
		{Crop: "Tomato", Quantity: "8 kg"},
		{Crop: "Onion", Quantity: "4 kg"},
		{Crop: "Brinjal", Quantity: "2 kg"},
	}, s.DemandSummary())
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 5.0, parseQuantity("5 kg"))
	assert.Equal(t, 2.5, parseQuantity(" 2.5kg"))
	assert.Equal(t, 3.0, parseQuantity("3"))
	assert.Equal(t, -1.5, parseQuantity("-1.5 kg"))
	assert.True(t, math.IsNaN(parseQuantity("kg 5")))
	assert.True(t, math.IsNaN(parseQuantity("")))
}
