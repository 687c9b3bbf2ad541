// Package seed holds the static initial datasets the ledgers bootstrap from.
// Every accessor returns a fresh copy so callers can mutate freely and tests
// get isolated ledgers.
package seed

import "farmlink/entities"

func Farmers() []entities.Farmer {
	return []entities.Farmer{
		{
			ID:         1,
			Name:       "Sita Devi",
			Village:    "A",
			LandSize:   "2",
			Crops:      []string{"Wheat", "Chili"},
			LastUpdate: "April 3, 2025",
			Notes:      "Has been farming for 15 years. Specializes in organic farming techniques.",
		},
		{
			ID:         2,
			Name:       "Mohan Singh",
			Village:    "B",
			LandSize:   "3.5",
			Crops:      []string{"Rice", "Wheat"},
			LastUpdate: "April 1, 2025",
			Notes:      "Recently resolved pest issues in wheat crop.",
		},
		{
			ID:         3,
			Name:       "Rajesh Patel",
			Village:    "C",
			LandSize:   "1.5",
			Crops:      []string{"Chili", "Tomato"},
			LastUpdate: "April 2, 2025",
			Notes:      "First-generation farmer. Started farming 5 years ago.",
		},
		{
			ID:         4,
			Name:       "Lata Kumari",
			Village:    "A",
			LandSize:   "2.2",
			Crops:      []string{"Onion", "Potato"},
			LastUpdate: "March 30, 2025",
			Notes:      "Specializes in root vegetables. Uses traditional farming methods.",
		},
		{
			ID:         5,
			Name:       "Santosh Kumar",
			Village:    "D",
			LandSize:   "4",
			Crops:      []string{"Rice", "Wheat", "Corn"},
			LastUpdate: "March 28, 2025",
			Notes:      "Has the largest farm in the district. Uses modern machinery.",
		},
	}
}

func FarmerUpdates() []entities.FarmerUpdate {
	return []entities.FarmerUpdate{
		{
			ID:         1,
			FarmerID:   1,
			FarmerName: "Sita Devi",
			Date:       "April 3, 2025",
			Crops: []entities.CropDelivery{
				{Name: "Chili", Quantity: 10},
				{Name: "Wheat", Quantity: 12},
			},
			Notes: "Good quality harvest",
		},
		{
			ID:         2,
			FarmerID:   2,
			FarmerName: "Mohan Singh",
			Date:       "April 2, 2025",
			Crops:      []entities.CropDelivery{},
			Notes:      "Pest issue resolved. Wheat crop recovery in progress.",
		},
		{
			ID:         3,
			FarmerID:   3,
			FarmerName: "Rajesh Patel",
			Date:       "April 1, 2025",
			Crops: []entities.CropDelivery{
				{Name: "Wheat", Quantity: 15},
			},
			Notes: "Will deliver tomorrow",
		},
	}
}

func ActiveCrops() []entities.ActiveCrop {
	return []entities.ActiveCrop{
		{
			ID:               1,
			FarmerID:         1,
			FarmerName:       "Sita Devi",
			CropName:         "Chili",
			GrowthStage:      entities.StageHarvesting,
			ExpectedQuantity: "10",
			ExpectedHarvest:  "April 10, 2025",
			Notes:            "Ready for harvest",
		},
		{
			ID:               2,
			FarmerID:         1,
			FarmerName:       "Sita Devi",
			CropName:         "Wheat",
			GrowthStage:      entities.StageRipening,
			ExpectedQuantity: "15",
			ExpectedHarvest:  "April 15, 2025",
			Notes:            "Good growth",
		},
		{
			ID:               3,
			FarmerID:         2,
			FarmerName:       "Mohan Singh",
			CropName:         "Rice",
			GrowthStage:      entities.StageFlowering,
			ExpectedQuantity: "20",
			ExpectedHarvest:  "April 25, 2025",
			Notes:            "Needs more water",
		},
	}
}

func ConsumerOrders() []entities.ConsumerOrder {
	return []entities.ConsumerOrder{
		{
			ID:           "ORD-005",
			Date:         "April 2, 2025",
			Items:        []entities.OrderItem{{Crop: "Tomato", Quantity: "5"}},
			Status:       entities.StatusProcessing,
			DeliveryDate: "April 8, 2025",
		},
		{
			ID:   "ORD-004",
			Date: "March 27, 2025",
			Items: []entities.OrderItem{
				{Crop: "Potato", Quantity: "3"},
				{Crop: "Onion", Quantity: "2"},
			},
			Status:       entities.StatusDelivered,
			DeliveryDate: "April 1, 2025",
		},
		{
			ID:           "ORD-003",
			Date:         "March 15, 2025",
			Items:        []entities.OrderItem{{Crop: "Brinjal", Quantity: "2"}},
			Status:       entities.StatusDelivered,
			DeliveryDate: "March 20, 2025",
		},
	}
}

func ConsumerProfile() entities.ConsumerProfile {
	return entities.ConsumerProfile{
		Name:        "Sunita Sharma",
		Email:       "sunita.sharma@example.com",
		Phone:       "+91 98765 43210",
		Community:   "Village B",
		CommunityID: "COM-102",
		Address:     "House No. 45, Near Temple, Village B, District Nashik, Maharashtra",
		JoinedDate:  "January 15, 2025",
	}
}

func Contributions() []entities.Contribution {
	return []entities.Contribution{
		{
			ID:        "PO-001",
			OrderID:   "CO-008",
			Consumer:  entities.ConsumerRef{Name: "Sunita Sharma", ID: "C-001"},
			Date:      "April 2, 2025",
			Items:     []entities.OrderItem{{Crop: "Tomato", Quantity: "5 kg"}},
			Status:    entities.ContributionPending,
			Fulfilled: false,
		},
		{
			ID:       "PO-002",
			OrderID:  "CO-008",
			Consumer: entities.ConsumerRef{Name: "Rakesh Mehta", ID: "C-002"},
			Date:     "April 3, 2025",
			Items: []entities.OrderItem{
				{Crop: "Tomato", Quantity: "3 kg"},
				{Crop: "Onion", Quantity: "4 kg"},
			},
			Status:    entities.ContributionPending,
			Fulfilled: false,
		},
		{
			ID:        "PO-003",
			OrderID:   "CO-008",
			Consumer:  entities.ConsumerRef{Name: "Anita Desai", ID: "C-003"},
			Date:      "April 4, 2025",
			Items:     []entities.OrderItem{{Crop: "Brinjal", Quantity: "2 kg"}},
			Status:    entities.ContributionPending,
			Fulfilled: false,
		},
		{
			ID:        "PO-004",
			OrderID:   "CO-007",
			Consumer:  entities.ConsumerRef{Name: "Sunil Kapoor", ID: "C-004"},
			Date:      "April 1, 2025",
			Items:     []entities.OrderItem{{Crop: "Potato", Quantity: "6 kg"}},
			Status:    entities.ContributionFulfilled,
			Fulfilled: true,
		},
	}
}

func CommunityOrders() []entities.CommunityOrder {
	return []entities.CommunityOrder{
		{
			ID:   "CO-008",
			Date: "April 1, 2025",
			Items: []entities.OrderItem{
				{Crop: "Tomato", Quantity: "8 kg"},
				{Crop: "Brinjal", Quantity: "2 kg"},
			},
			Status:       entities.StatusProcessing,
			DeliveryDate: "April 7, 2025",
		},
		{
			ID:   "CO-007",
			Date: "March 25, 2025",
			Items: []entities.OrderItem{
				{Crop: "Tomato", Quantity: "10 kg"},
				{Crop: "Onion", Quantity: "6 kg"},
			},
			Status:       entities.StatusDelivered,
			DeliveryDate: "March 30, 2025",
		},
	}
}

func CommunityProfile() entities.CommunityProfile {
	return entities.CommunityProfile{
		Name:    "Village B Farmers Collective",
		ID:      "COM-102",
		Address: "Block 2, Ward 7, Village B, District Nashik",
		Region:  "West Nashik Agricultural Zone",
		Agent: entities.AgentContact{
			Name:    "Ravi Kumar",
			ID:      "AG-34",
			Contact: "+91 98765 12345",
		},
		Head: entities.HeadContact{
			Name:             "Rajesh Singh",
			Phone:            "+91 94876 43210",
			Email:            "rajesh_singh@villageB.org",
			AlternateContact: "Seema Joshi - +91 88123 45678",
		},
		MembersCount: 22,
		Established:  "January 10, 2024",
	}
}

func ConsumerProfiles() []entities.ConsumerProfile {
	return []entities.ConsumerProfile{
		{
			ID:          "C-001",
			Name:        "Sunita Sharma",
			Email:       "sunita.sharma@example.com",
			Phone:       "+91 98765 43210",
			Community:   "Village B",
			CommunityID: "COM-102",
			Address:     "House No. 45, Near Temple, Village B",
			JoinedDate:  "January 15, 2025",
		},
		{
			ID:          "C-002",
			Name:        "Rakesh Mehta",
			Email:       "rakesh.mehta@example.com",
			Phone:       "+91 95432 10987",
			Community:   "Village B",
			CommunityID: "COM-102",
			Address:     "House No. 23, Main Road, Village B",
			JoinedDate:  "February 5, 2025",
		},
		{
			ID:          "C-003",
			Name:        "Anita Desai",
			Email:       "anita.desai@example.com",
			Phone:       "+91 87654 32109",
			Community:   "Village B",
			CommunityID: "COM-102",
			Address:     "Flat 3, Building 2, Village B",
			JoinedDate:  "March 10, 2025",
		},
		{
			ID:          "C-004",
			Name:        "Sunil Kapoor",
			Email:       "sunil.kapoor@example.com",
			Phone:       "+91 76543 21098",
			Community:   "Village B",
			CommunityID: "COM-102",
			Address:     "House No. 56, East Road, Village B",
			JoinedDate:  "January 28, 2025",
		},
	}
}

// NewConsumers is the trailing-window join list. Static in this build.
func NewConsumers() []entities.NewConsumer {
	return []entities.NewConsumer{
		{
			ID:         "C-003",
			Name:       "Anita Desai",
			Email:      "anita.desai@example.com",
			Phone:      "+91 87654 32109",
			JoinedDate: "March 10, 2025",
			Community:  "Village B",
		},
		{
			ID:         "C-005",
			Name:       "Rahul Sharma",
			Email:      "rahul.sharma@example.com",
			Phone:      "+91 98765 67890",
			JoinedDate: "March 15, 2025",
			Community:  "Village B",
		},
		{
			ID:         "C-006",
			Name:       "Priya Patel",
			Email:      "priya.patel@example.com",
			Phone:      "+91 91234 56789",
			JoinedDate: "March 20, 2025",
			Community:  "Village B",
		},
	}
}
