package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/propdesk/propdesk/internal/validation"
)

// PropertiesService exposes the /api/Properties resource.
type PropertiesService struct {
	client *Client
}

// List returns all properties.
func (s *PropertiesService) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := s.client.do(ctx, http.MethodGet, propertiesPath, nil, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Filter returns properties matching the given name/address/price filters.
func (s *PropertiesService) Filter(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.Address != "" {
		query.Set("address", filter.Address)
	}
	if filter.MinPrice > 0 {
		query.Set("minPrice", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice > 0 {
		query.Set("maxPrice", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}
	var properties []models.Property
	if err := s.client.do(ctx, http.MethodGet, propertiesPath, query, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Get returns a single property by id.
func (s *PropertiesService) Get(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	if err := s.client.do(ctx, http.MethodGet, propertyPath(id), nil, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// ByOwner returns all properties belonging to an owner.
func (s *PropertiesService) ByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	var properties []models.Property
	if err := s.client.do(ctx, http.MethodGet, propertiesByOwnerPath(ownerID), nil, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Create registers a new property.
func (s *PropertiesService) Create(ctx context.Context, in models.CreateProperty) (*models.Property, error) {
	if err := validation.Validate.Struct(in); err != nil {
		return nil, err
	}
	var property models.Property
	if err := s.client.do(ctx, http.MethodPost, propertiesPath, nil, in, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// Update replaces a property record.
func (s *PropertiesService) Update(ctx context.Context, id string, in models.UpdateProperty) (*models.Property, error) {
	if err := validation.Validate.Struct(in); err != nil {
		return nil, err
	}
	var property models.Property
	if err := s.client.do(ctx, http.MethodPut, propertyPath(id), nil, in, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// Delete removes a property.
func (s *PropertiesService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, propertyPath(id), nil, nil, nil)
}
