package api

import (
	"context"
	"net/http"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/propdesk/propdesk/internal/validation"
)

// ImagesService exposes the /api/PropertyImages resource.
type ImagesService struct {
	client *Client
}

// ByProperty returns the images attached to a property.
func (s *ImagesService) ByProperty(ctx context.Context, propertyID string) ([]models.PropertyImage, error) {
	var images []models.PropertyImage
	if err := s.client.do(ctx, http.MethodGet, imagesByPropertyPath(propertyID), nil, nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// Create attaches an image to a property.
func (s *ImagesService) Create(ctx context.Context, in models.CreatePropertyImage) (*models.PropertyImage, error) {
	if err := validation.Validate.Struct(in); err != nil {
		return nil, err
	}
	var image models.PropertyImage
	if err := s.client.do(ctx, http.MethodPost, imagesPath, nil, in, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// Delete removes an image.
func (s *ImagesService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, imagePath(id), nil, nil, nil)
}
