// Package user provides the user domain model and identity resolution.
package user

import (
	"context"
	"time"

	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

// User is the internal record for an externally authenticated caller. The
// external identity token is the sole natural key; records are created lazily
// on first interaction and never updated afterwards.
type User struct {
	ID         uint
	ExternalID string
	Email      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Identity carries the attributes extracted from a validated credential.
type Identity struct {
	ExternalID string
	Email      *string
}

// Repository defines storage operations for users.
type Repository interface {
	FindByExternalID(ctx context.Context, externalID string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Upsert(ctx context.Context, user *User) (*User, error)
}

// Service resolves identities to persisted user records.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EnsureUser returns the user for the given identity, creating it on first
// contact. The repository upsert guarantees concurrent identical calls
// converge on a single row.
func (s *Service) EnsureUser(ctx context.Context, identity Identity) (*User, error) {
	if identity.ExternalID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"external identity is required", nil, "6f1df1f0-8a9e-4a42-9a2f-4f0b7c3d1e58")
	}

	resolved, err := s.repo.Upsert(ctx, &User{
		ExternalID: identity.ExternalID,
		Email:      identity.Email,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to resolve user")
	}
	return resolved, nil
}
