// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storelocator/internal/domain/entity"
)

// SortField orders source pages.
type SortField string

const (
	SortByName SortField = "name"
	SortByCity SortField = "city"
)

// SourceFilter narrows a source page request. Empty fields match everything.
type SourceFilter struct {
	City   string `json:"city,omitempty"`
	Region string `json:"region,omitempty"`
	Text   string `json:"text,omitempty"`
}

// PageRequest asks the source for one page of locations. Pages are 1-based.
type PageRequest struct {
	Filter   SourceFilter
	Sort     SortField
	Page     int
	PageSize int
}

// Page is one page of locations plus the total number of matches.
type Page struct {
	Items []*entity.Location
	Total int
}

// LocationSource is the external system of record for locations.
// Implementations return domainerrors.ErrLocationNotFound for unknown ids and
// an error wrapping domainerrors.ErrSourceUnavailable for transport failures.
type LocationSource interface {
	// FetchPage retrieves one page of locations.
	FetchPage(ctx context.Context, req PageRequest) (*Page, error)

	// FetchByID retrieves a single location.
	FetchByID(ctx context.Context, id string) (*entity.Location, error)
}
