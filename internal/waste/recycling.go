package waste

import (
	"context"
	"fmt"
	"log"
	"strings"

	"takatrack-client/internal/models"

	"golang.org/x/sync/errgroup"
)

// impactFactors are kg of CO2 saved per kg recycled, as applied upstream.
var impactFactors = map[models.Material]float64{
	models.MaterialPlastic:    2.0,
	models.MaterialPaper:      1.5,
	models.MaterialGlass:      0.5,
	models.MaterialMetal:      3.0,
	models.MaterialElectronic: 4.0,
}

const defaultRecyclingLocation = "Recycling Center"

// ImpactFactor returns the CO2 factor for material and whether it is known.
func ImpactFactor(material models.Material) (float64, bool) {
	f, ok := impactFactors[material]
	return f, ok
}

// EstimateImpact previews the environmental impact the backend will record.
func EstimateImpact(material models.Material, weight float64) float64 {
	f, ok := impactFactors[material]
	if !ok {
		f = 1.0
	}
	return weight * f
}

type RecyclingBackend interface {
	RecyclingRecords(ctx context.Context) ([]models.RecyclingRecord, error)
	RecyclingStats(ctx context.Context) (models.RecyclingStats, error)
	CreateRecyclingRecord(ctx context.Context, req models.RecyclingRequest) error
}

type RecyclingList struct {
	Records []models.RecyclingRecord `json:"records"`
	Stats   models.RecyclingStats    `json:"stats"`
}

type RecyclingManager struct {
	backend RecyclingBackend
}

func NewRecyclingManager(backend RecyclingBackend) *RecyclingManager {
	return &RecyclingManager{backend: backend}
}

// List fetches records and totals together.
func (m *RecyclingManager) List(ctx context.Context) (*RecyclingList, error) {
	var out RecyclingList
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Records, err = m.backend.RecyclingRecords(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Stats, err = m.backend.RecyclingStats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("❌ Failed to load recycling data: %v", err)
		return nil, fmt.Errorf("failed to load recycling data: %w", err)
	}
	return &out, nil
}

// Create validates and records a recycling drop-off, then reloads.
func (m *RecyclingManager) Create(ctx context.Context, req models.RecyclingRequest) (*RecyclingList, error) {
	req.Material = models.Material(strings.ToLower(strings.TrimSpace(string(req.Material))))
	if _, ok := impactFactors[req.Material]; !ok {
		return nil, &ValidationError{Field: "material", Message: "Unknown material"}
	}
	if req.Weight <= 0 {
		return nil, &ValidationError{Field: "weight", Message: "Weight must be greater than zero"}
	}
	req.Location = strings.TrimSpace(req.Location)
	if req.Location == "" {
		req.Location = defaultRecyclingLocation
	}

	if err := m.backend.CreateRecyclingRecord(ctx, req); err != nil {
		log.Printf("❌ Failed to add recycling record: %v", err)
		return nil, fmt.Errorf("failed to add record: %w", err)
	}
	log.Printf("♻️  Recycled %.1fkg of %s (~%.2fkg CO2 saved)", req.Weight, req.Material, EstimateImpact(req.Material, req.Weight))
	return m.List(ctx)
}
