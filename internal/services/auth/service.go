package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MCBE-Utilities/BeRAPI/internal/dependencies/clock"
	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/storage"
)

// Errors
var (
	ErrNoIdentity       = errors.New("no identity configured")
	ErrIdentityExpired  = errors.New("identity has expired")
	ErrIncompleteTicket = errors.New("identity needs both a session ticket and an account hash")
)

// Party is the relying party an identity was issued for
type Party string

const (
	// PartyRealms authorizes Realms API calls and is the default identity
	PartyRealms Party = "realms"
	// PartyXbox authorizes Xbox Live profile calls
	PartyXbox Party = "xbox"
)

// Service hands out the identities requests are authorized with
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// SetIdentity stores the identity for a party
func (s *Service) SetIdentity(ctx context.Context, party Party, identity model.Identity) error {
	if identity.SessionTicket == "" || identity.AccountHash == "" {
		return ErrIncompleteTicket
	}
	if identity.Expired(s.clock.Now()) {
		return ErrIdentityExpired
	}
	return s.storage.SaveIdentity(ctx, string(party), identity)
}

// Identity returns the current identity for a party.
// The Xbox party falls back to the Realms identity when none was set for it.
func (s *Service) Identity(ctx context.Context, party Party) (model.Identity, error) {
	identity, err := s.storage.GetIdentity(ctx, string(party))
	if errors.Is(err, model.ErrIdentityNotFound) && party != PartyRealms {
		s.logger.Debug("falling back to realms identity", slog.String("party", string(party)))
		identity, err = s.storage.GetIdentity(ctx, string(PartyRealms))
	}
	if err != nil {
		if errors.Is(err, model.ErrIdentityNotFound) {
			return model.Identity{}, fmt.Errorf("%w for %s", ErrNoIdentity, party)
		}
		return model.Identity{}, err
	}

	if identity.Expired(s.clock.Now()) {
		return model.Identity{}, fmt.Errorf("%w: %s expired at %s", ErrIdentityExpired, party, identity.ExpiresAt)
	}

	return identity, nil
}

// Forget removes the identity stored for a party
func (s *Service) Forget(ctx context.Context, party Party) error {
	return s.storage.DeleteIdentity(ctx, string(party))
}

// Header builds the Authorization header value for an identity
func Header(identity model.Identity) string {
	return fmt.Sprintf("XBL3.0 x=%s;%s", identity.AccountHash, identity.SessionTicket)
}
