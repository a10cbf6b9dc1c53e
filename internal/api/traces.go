package api

import (
	"context"
	"net/http"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/propdesk/propdesk/internal/validation"
)

// TracesService exposes the /api/PropertyTraces resource. Traces are the
// append-only price/sale history of a property; the remote API offers no
// update or delete.
type TracesService struct {
	client *Client
}

// ByProperty returns the sale traces recorded for a property.
func (s *TracesService) ByProperty(ctx context.Context, propertyID string) ([]models.PropertyTrace, error) {
	var traces []models.PropertyTrace
	if err := s.client.do(ctx, http.MethodGet, tracesByPropertyPath(propertyID), nil, nil, &traces); err != nil {
		return nil, err
	}
	return traces, nil
}

// Create records a new sale trace.
func (s *TracesService) Create(ctx context.Context, in models.CreatePropertyTrace) (*models.PropertyTrace, error) {
	if err := validation.Validate.Struct(in); err != nil {
		return nil, err
	}
	var trace models.PropertyTrace
	if err := s.client.do(ctx, http.MethodPost, tracesPath, nil, in, &trace); err != nil {
		return nil, err
	}
	return &trace, nil
}
