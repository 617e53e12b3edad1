package api

import (
	"context"
	"fmt"
	"net/url"

	"takatrack-client/internal/models"
)

func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.Post(ctx, "/api/auth/login", models.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.Post(ctx, "/api/auth/register", req, nil)
}

func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := c.Get(ctx, "/api/dashboard/stats", &stats)
	return stats, err
}

func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	notifications := []models.Notification{}
	if err := c.Get(ctx, "/api/notifications", &notifications); err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (c *Client) Drivers(ctx context.Context) ([]models.Driver, error) {
	drivers := []models.Driver{}
	if err := c.Get(ctx, "/api/drivers", &drivers); err != nil {
		return nil, err
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}
	return drivers, nil
}

func (c *Client) Collections(ctx context.Context) ([]models.Collection, error) {
	collections := []models.Collection{}
	if err := c.Get(ctx, "/api/waste/collections", &collections); err != nil {
		return nil, err
	}
	if collections == nil {
		collections = []models.Collection{}
	}
	return collections, nil
}

func (c *Client) CreateCollection(ctx context.Context, req models.CollectionRequest) error {
	return c.Post(ctx, "/api/waste/collections", req, nil)
}

func (c *Client) UpdateCollectionStatus(ctx context.Context, id models.ID, status models.CollectionStatus) error {
	path := fmt.Sprintf("/api/waste/collections/%s", url.PathEscape(id.String()))
	return c.Put(ctx, path, models.StatusUpdateRequest{Status: status}, nil)
}

func (c *Client) Bins(ctx context.Context) ([]models.Bin, error) {
	bins := []models.Bin{}
	if err := c.Get(ctx, "/api/waste/bins", &bins); err != nil {
		return nil, err
	}
	if bins == nil {
		bins = []models.Bin{}
	}
	return bins, nil
}

func (c *Client) RecyclingRecords(ctx context.Context) ([]models.RecyclingRecord, error) {
	records := []models.RecyclingRecord{}
	if err := c.Get(ctx, "/api/recycling/records", &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.RecyclingRecord{}
	}
	return records, nil
}

func (c *Client) CreateRecyclingRecord(ctx context.Context, req models.RecyclingRequest) error {
	return c.Post(ctx, "/api/recycling/records", req, nil)
}

func (c *Client) RecyclingStats(ctx context.Context) (models.RecyclingStats, error) {
	var stats models.RecyclingStats
	err := c.Get(ctx, "/api/recycling/stats", &stats)
	return stats, err
}
