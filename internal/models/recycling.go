package models

// Material is a recyclable material kind
type Material string

const (
	MaterialPlastic    Material = "plastic"
	MaterialPaper      Material = "paper"
	MaterialGlass      Material = "glass"
	MaterialMetal      Material = "metal"
	MaterialElectronic Material = "electronic"
)

// RecyclingRecord is immutable once created.
// Material is a plain string because example rows carry display labels
// ("Plastic Bottles") rather than the enum.
type RecyclingRecord struct {
	ID                  ID      `json:"id"`
	UserID              ID      `json:"user_id,omitempty"`
	Material            string  `json:"material"`
	Weight              float64 `json:"weight"`
	Location            string  `json:"location"`
	EnvironmentalImpact float64 `json:"environmental_impact"` // kg CO2 saved
	CreatedAt           string  `json:"createdAt"`
}

// RecyclingRequest is the body of POST /api/recycling/records
type RecyclingRequest struct {
	Material Material `json:"material"`
	Weight   float64  `json:"weight"`
	Location string   `json:"location"`
}

type RecyclingStats struct {
	TotalWeight     float64 `json:"totalWeight"`
	CarbonSaved     float64 `json:"carbonSaved"`
	TreesEquivalent int     `json:"treesEquivalent"`
}
