package realm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
)

// PlayerManager is a realm's identity cache of players, keyed by xuid.
// It only ever inserts: once a xuid is cached, that *Player is returned for
// it from then on, even if the player's online or operator state has since
// changed remotely.
type PlayerManager struct {
	realm *Realm

	mu      sync.Mutex
	players map[string]*Player
	order   []*Player
}

// Owner is the realm owner as resolved through the Xbox profile API
type Owner struct {
	Xuid string
	Name string
}

func newPlayerManager(r *Realm) *PlayerManager {
	return &PlayerManager{
		realm:   r,
		players: make(map[string]*Player),
	}
}

// GetAll fetches the realm's current player list, caches unseen players and
// returns every cached player in first-seen order
func (pm *PlayerManager) GetAll(ctx context.Context) ([]*Player, error) {
	s := pm.realm.session

	var snapshot model.RealmJSON
	if err := s.requests.Do(ctx, http.MethodGet, s.endpoints.Realm(pm.realm.ID()), &snapshot); err != nil {
		return nil, err
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	added := 0
	for _, entry := range snapshot.Players {
		if _, ok := pm.players[entry.UUID]; ok {
			continue
		}
		player := newPlayer(pm.realm, entry)
		pm.players[entry.UUID] = player
		pm.order = append(pm.order, player)
		added++
	}

	if added > 0 {
		s.logger.Debug("cached players",
			slog.Int64("realm_id", int64(pm.realm.ID())),
			slog.Int("added", added),
			slog.Int("total", len(pm.order)),
		)
	}

	result := make([]*Player, len(pm.order))
	copy(result, pm.order)
	return result, nil
}

// GetAllOnline returns the cached players whose frozen online flag is set
func (pm *PlayerManager) GetAllOnline(ctx context.Context) ([]*Player, error) {
	return pm.filter(ctx, func(p *Player) bool { return p.IsOnline() })
}

// GetAllOffline returns the cached players whose frozen online flag is unset
func (pm *PlayerManager) GetAllOffline(ctx context.Context) ([]*Player, error) {
	return pm.filter(ctx, func(p *Player) bool { return !p.IsOnline() })
}

func (pm *PlayerManager) filter(ctx context.Context, keep func(*Player) bool) ([]*Player, error) {
	players, err := pm.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var result []*Player
	for _, p := range players {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetByXuid refreshes the cache and returns the player with the given xuid
func (pm *PlayerManager) GetByXuid(ctx context.Context, xuid string) (*Player, error) {
	players, err := pm.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		if p.Xuid() == xuid {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrPlayerNotFound, xuid)
}

// GetByName resolves a gamertag to a xuid, then looks the xuid up like GetByXuid
func (pm *PlayerManager) GetByName(ctx context.Context, name string) (*Player, error) {
	s := pm.realm.session
	user, err := fetchProfile(ctx, s, s.endpoints.ProfileByGamertag(name))
	if err != nil {
		return nil, err
	}
	return pm.GetByXuid(ctx, user.ID)
}

// GetOwner looks up the realm owner's profile without caching a Player
func (pm *PlayerManager) GetOwner(ctx context.Context) (Owner, error) {
	s := pm.realm.session
	xuid := pm.realm.OwnerXuid()
	user, err := fetchProfile(ctx, s, s.endpoints.ProfileByXuid(xuid))
	if err != nil {
		return Owner{}, err
	}
	name, _ := user.Lookup(model.SettingGamertag)
	return Owner{Xuid: xuid, Name: name}, nil
}

// Len returns the number of cached players
func (pm *PlayerManager) Len() int {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return len(pm.order)
}
