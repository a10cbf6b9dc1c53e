package models

import "time"

// Owner represents a property owner as returned by the remote API
type Owner struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	Photo      string     `json:"photo,omitempty"`
	BirthDate  string     `json:"birthDate"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Properties []Property `json:"properties,omitempty"`
}

// CreateOwner is the payload for creating an owner
type CreateOwner struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Address   string `json:"address" validate:"required,min=1,max=300"`
	Photo     string `json:"photo,omitempty" validate:"omitempty,url"`
	BirthDate string `json:"birthdate" validate:"required"`
}

// UpdateOwner is the payload for updating an owner. The remote API expects
// a full replacement, so the shape matches CreateOwner.
type UpdateOwner struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Address   string `json:"address" validate:"required,min=1,max=300"`
	Photo     string `json:"photo,omitempty" validate:"omitempty,url"`
	BirthDate string `json:"birthdate" validate:"required"`
}
