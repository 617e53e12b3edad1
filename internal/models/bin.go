package models

// BinStatus is the fill state reported for a bin
type BinStatus string

const (
	BinStatusFull  BinStatus = "full"
	BinStatusHalf  BinStatus = "half"
	BinStatusEmpty BinStatus = "empty"
)

// Bin is owned by the upstream and read-only to this client.
type Bin struct {
	ID          ID        `json:"id"`
	Type        string    `json:"type"`
	Status      BinStatus `json:"status"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	LastUpdated string    `json:"lastUpdated,omitempty"` // ISO timestamp
}

// TruckStatus is the activity of a collection truck
type TruckStatus string

const (
	TruckStatusCollecting TruckStatus = "collecting"
	TruckStatusEnRoute    TruckStatus = "en route"
	TruckStatusIdle       TruckStatus = "idle"
)

type Truck struct {
	ID               string      `json:"id"`
	Driver           string      `json:"driver"`
	Status           TruckStatus `json:"status"`
	CollectionsToday int         `json:"collectionsToday"`
	Lat              float64     `json:"lat"`
	Lng              float64     `json:"lng"`
}

// Position is a geographic coordinate acquired for the device
type Position struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label,omitempty"` // reverse geocoded address, best-effort
}
