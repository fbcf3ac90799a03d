package realm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/MCBE-Utilities/BeRAPI/internal/dependencies/clock"
	"github.com/MCBE-Utilities/BeRAPI/internal/endpoints"
	"github.com/MCBE-Utilities/BeRAPI/internal/model"
)

// Manager is the directory of realms visible to the session.
// It keeps no cache: every lookup fetches the realm list again and returns
// new Realm objects.
type Manager struct {
	session *session
}

// NewManager creates a new realm Manager
func NewManager(requests Requester, eps endpoints.Endpoints, clock clock.Clock, logger *slog.Logger) *Manager {
	return &Manager{
		session: &session{
			requests:  requests,
			endpoints: eps,
			clock:     clock,
			logger:    logger,
		},
	}
}

// GetAll fetches every realm listed on the account
func (m *Manager) GetAll(ctx context.Context) ([]*Realm, error) {
	var result model.ServersJSON
	if err := m.session.requests.Do(ctx, http.MethodGet, m.session.endpoints.Realms(), &result); err != nil {
		return nil, err
	}

	realms := make([]*Realm, 0, len(result.Servers))
	for _, snapshot := range result.Servers {
		realms = append(realms, newRealm(m.session, snapshot))
	}

	m.session.logger.Debug("fetched realms", slog.Int("count", len(realms)))
	return realms, nil
}

// GetByID fetches the realm list and returns the realm with the given id
func (m *Manager) GetByID(ctx context.Context, id model.RealmID) (*Realm, error) {
	realms, err := m.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range realms {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", model.ErrRealmNotFound, id)
}

// GetByOwnerXuid fetches the realm list and returns the realms owned by xuid
func (m *Manager) GetByOwnerXuid(ctx context.Context, xuid string) ([]*Realm, error) {
	realms, err := m.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var owned []*Realm
	for _, r := range realms {
		if r.OwnerXuid() == xuid {
			owned = append(owned, r)
		}
	}
	if len(owned) == 0 {
		return nil, fmt.Errorf("%w: owner %s", model.ErrRealmNotFound, xuid)
	}
	return owned, nil
}

// GetByInviteCode resolves an invite code to its realm
func (m *Manager) GetByInviteCode(ctx context.Context, code string) (*Realm, error) {
	var snapshot model.RealmJSON
	if err := m.session.requests.Do(ctx, http.MethodGet, m.session.endpoints.RealmByInvite(code), &snapshot); err != nil {
		return nil, err
	}
	return newRealm(m.session, snapshot), nil
}

// Profile fetches the full Xbox profile of any xuid, uncached
func (m *Manager) Profile(ctx context.Context, xuid string) (model.UserSettings, error) {
	return fetchProfile(ctx, m.session, m.session.endpoints.ProfileByXuid(xuid))
}

// ProfileByGamertag fetches the full Xbox profile behind a gamertag, uncached
func (m *Manager) ProfileByGamertag(ctx context.Context, gamertag string) (model.UserSettings, error) {
	return fetchProfile(ctx, m.session, m.session.endpoints.ProfileByGamertag(gamertag))
}
