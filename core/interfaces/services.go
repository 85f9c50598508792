// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"pools-app-api/core/domain"
)

// DirectoryEntry holds the metadata the facility directory publishes for
// one facility, keyed by display name.
type DirectoryEntry struct {
	Address string
	Phone   string
	Type    domain.FacilityType
}

// FacilityDirectory fetches the facility metadata listing pages
type FacilityDirectory interface {
	FetchDirectory(ctx context.Context) (map[string]DirectoryEntry, error)
}
