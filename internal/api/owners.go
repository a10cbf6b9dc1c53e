package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/propdesk/propdesk/internal/validation"
)

// OwnersService exposes the /api/Owners resource.
type OwnersService struct {
	client *Client
}

// List returns all owners.
func (s *OwnersService) List(ctx context.Context) ([]models.Owner, error) {
	var owners []models.Owner
	if err := s.client.do(ctx, http.MethodGet, ownersPath, nil, nil, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// FilterByName returns owners whose name matches the filter.
func (s *OwnersService) FilterByName(ctx context.Context, name string) ([]models.Owner, error) {
	query := url.Values{"name": []string{name}}
	var owners []models.Owner
	if err := s.client.do(ctx, http.MethodGet, ownersPath, query, nil, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// Get returns a single owner by id.
func (s *OwnersService) Get(ctx context.Context, id string) (*models.Owner, error) {
	var owner models.Owner
	if err := s.client.do(ctx, http.MethodGet, ownerPath(id), nil, nil, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetWithProperties returns an owner with their property list embedded.
func (s *OwnersService) GetWithProperties(ctx context.Context, id string) (*models.Owner, error) {
	var owner models.Owner
	if err := s.client.do(ctx, http.MethodGet, ownerPropertiesPath(id), nil, nil, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// Create registers a new owner.
func (s *OwnersService) Create(ctx context.Context, in models.CreateOwner) (*models.Owner, error) {
	if err := validation.Validate.Struct(in); err != nil {
		return nil, err
	}
	var owner models.Owner
	if err := s.client.do(ctx, http.MethodPost, ownersPath, nil, in, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// Update replaces an owner record.
func (s *OwnersService) Update(ctx context.Context, id string, in models.UpdateOwner) (*models.Owner, error) {
	if err := validation.Validate.Struct(in); err != nil {
		return nil, err
	}
	var owner models.Owner
	if err := s.client.do(ctx, http.MethodPut, ownerPath(id), nil, in, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// Delete removes an owner.
func (s *OwnersService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, ownerPath(id), nil, nil, nil)
}
