package storage

import (
	"context"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
)

// Storage defines the interface for credential persistence.
// Identities are keyed by the relying party they were issued for.
type Storage interface {
	SaveIdentity(ctx context.Context, party string, identity model.Identity) error
	GetIdentity(ctx context.Context, party string) (model.Identity, error)
	DeleteIdentity(ctx context.Context, party string) error
}
