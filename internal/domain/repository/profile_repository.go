// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
	"alzassist/internal/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile exists for an ID.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when a profile is created twice for the same identity.
	ErrProfileExists = errors.New("profile already exists")
)

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByID retrieves a profile by the identity-provider user ID.
	// Returns ErrProfileNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update writes name, phone and home coordinate changes.
	Update(ctx context.Context, profile *entity.Profile) error
}
