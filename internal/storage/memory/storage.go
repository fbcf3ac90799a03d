package memory

import (
	"context"
	"sync"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu         sync.RWMutex
	identities map[string]model.Identity
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		identities: make(map[string]model.Identity),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveIdentity(ctx context.Context, party string, identity model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[party] = identity
	return nil
}

func (s *Storage) GetIdentity(ctx context.Context, party string) (model.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.identities[party]
	if !ok {
		return model.Identity{}, model.ErrIdentityNotFound
	}
	return identity, nil
}

func (s *Storage) DeleteIdentity(ctx context.Context, party string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.identities, party)
	return nil
}
