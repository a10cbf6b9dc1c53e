package models

import "time"

// Property represents a real-estate record as returned by the remote API
type Property struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	Year         int     `json:"year"`
	InternalCode string  `json:"internalCode,omitempty"`
	OwnerID      string  `json:"idOwner"`
	OwnerName    string  `json:"ownerName,omitempty"`
}

// CreateProperty is the payload for creating a property
type CreateProperty struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Address      string  `json:"address" validate:"required,min=1,max=300"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Taxes        float64 `json:"taxes" validate:"gte=0"`
	Year         int     `json:"year" validate:"required,gte=1800,lte=2100"`
	InternalCode string  `json:"internalCode,omitempty" validate:"omitempty,max=50"`
	OwnerID      string  `json:"idOwner" validate:"required"`
}

// UpdateProperty is the payload for updating a property
type UpdateProperty struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Address      string  `json:"address" validate:"required,min=1,max=300"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Taxes        float64 `json:"taxes" validate:"gte=0"`
	Year         int     `json:"year" validate:"required,gte=1800,lte=2100"`
	InternalCode string  `json:"internalCode,omitempty" validate:"omitempty,max=50"`
	OwnerID      string  `json:"idOwner" validate:"required"`
}

// PropertyFilter holds the supported list filters for properties. Zero
// values mean "not set" and are omitted from the query string.
type PropertyFilter struct {
	Name     string
	Address  string
	MinPrice float64
	MaxPrice float64
}

// PropertyImage represents an image attached to a property
type PropertyImage struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreatePropertyImage is the payload for attaching an image to a property
type CreatePropertyImage struct {
	PropertyID string `json:"propertyId" validate:"required"`
	ImageURL   string `json:"imageUrl" validate:"required,url"`
	Enabled    bool   `json:"enabled"`
}

// PropertyTrace represents a historical price/sale record for a property
type PropertyTrace struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	DateSale   string    `json:"dateSale"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Tax        float64   `json:"tax"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreatePropertyTrace is the payload for recording a sale trace
type CreatePropertyTrace struct {
	PropertyID string  `json:"propertyId" validate:"required"`
	DateSale   string  `json:"dateSale" validate:"required"`
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	Value      float64 `json:"value" validate:"required,gt=0"`
	Tax        float64 `json:"tax" validate:"gte=0"`
}
