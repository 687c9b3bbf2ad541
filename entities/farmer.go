package entities

type Farmer struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Village    string   `json:"village"`
	LandSize   string   `json:"land_size"` // acres, free-form
	Crops      []string `json:"crops"`
	LastUpdate string   `json:"last_update"`
	Notes      string   `json:"notes"`
}

// CropDelivery is one crop line inside a farmer update.
type CropDelivery struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"` // kg
}

type FarmerUpdate struct {
	ID         int            `json:"id"`
	FarmerID   int            `json:"farmer_id"`
	FarmerName string         `json:"farmer_name"`
	Date       string         `json:"date"`
	Crops      []CropDelivery `json:"crops"`
	Notes      string         `json:"notes"`
}

type ActiveCrop struct {
	ID               int    `json:"id"`
	FarmerID         int    `json:"farmer_id"`
	FarmerName       string `json:"farmer_name"`
	CropName         string `json:"crop_name"`
	GrowthStage      string `json:"growth_stage"`
	ExpectedQuantity string `json:"expected_quantity"` // kg, free-form
	ExpectedHarvest  string `json:"expected_harvest_date"`
	Notes            string `json:"notes"`
}

const (
	StageGermination = "Germination"
	StageSeedling    = "Seedling"
	StageVegetative  = "Vegetative"
	StageBudding     = "Budding"
	StageFlowering   = "Flowering"
	StageRipening    = "Ripening"
	StageHarvesting  = "Harvesting"
)

// GrowthStages lists the stages in display order. Progression is not
// enforced on input.
var GrowthStages = []string{
	StageGermination,
	StageSeedling,
	StageVegetative,
	StageBudding,
	StageFlowering,
	StageRipening,
	StageHarvesting,
}
