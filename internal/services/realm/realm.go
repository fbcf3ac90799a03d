package realm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/requests"
)

// Realm is a read-only view over one fetched realm snapshot.
// Mutations are sent to the API but never applied to the snapshot;
// fetch the realm again to observe them.
type Realm struct {
	session   *session
	snapshot  model.RealmJSON
	fetchedAt time.Time
	players   *PlayerManager
}

func newRealm(s *session, snapshot model.RealmJSON) *Realm {
	r := &Realm{
		session:   s,
		snapshot:  snapshot,
		fetchedAt: s.clock.Now(),
	}
	r.players = newPlayerManager(r)
	return r
}

// ID returns the realm id
func (r *Realm) ID() model.RealmID {
	return r.snapshot.ID
}

// ClubID returns the realm's Xbox club id
func (r *Realm) ClubID() int64 {
	return r.snapshot.ClubID
}

// OwnerXuid returns the owner's xuid
func (r *Realm) OwnerXuid() string {
	return r.snapshot.OwnerUUID
}

// OwnerName returns the owner name as reported by the Realms API
func (r *Realm) OwnerName() string {
	return r.snapshot.Owner
}

// Name returns the realm name
func (r *Realm) Name() string {
	return r.snapshot.Name
}

// Description returns the realm description (motd)
func (r *Realm) Description() string {
	return r.snapshot.Motd
}

// State returns the realm state
func (r *Realm) State() model.RealmState {
	return r.snapshot.State
}

// IsOpen reports whether the realm was open when fetched
func (r *Realm) IsOpen() bool {
	return r.snapshot.State == model.RealmStateOpen
}

// Expired reports whether the realm subscription had expired
func (r *Realm) Expired() bool {
	return r.snapshot.Expired
}

// DaysLeft returns the remaining subscription days
func (r *Realm) DaysLeft() int {
	return r.snapshot.DaysLeft
}

// MaxPlayers returns the player slot count
func (r *Realm) MaxPlayers() int {
	return r.snapshot.MaxPlayers
}

// WorldType returns the world type of the active slot
func (r *Realm) WorldType() string {
	return r.snapshot.WorldType
}

// Snapshot returns the raw JSON the realm was created from
func (r *Realm) Snapshot() model.RealmJSON {
	return r.snapshot
}

// FetchedAt returns when the snapshot was fetched
func (r *Realm) FetchedAt() time.Time {
	return r.fetchedAt
}

// Players returns the realm's player manager
func (r *Realm) Players() *PlayerManager {
	return r.players
}

// Open opens the realm
func (r *Realm) Open(ctx context.Context) error {
	return r.do(ctx, http.MethodPut, r.session.endpoints.Open(r.ID()), nil)
}

// Close closes the realm
func (r *Realm) Close(ctx context.Context) error {
	return r.do(ctx, http.MethodPut, r.session.endpoints.Close(r.ID()), nil)
}

// Rename changes the realm name
func (r *Realm) Rename(ctx context.Context, name string) error {
	return r.configure(ctx, model.DescriptionUpdate{Name: &name})
}

// SetDescription changes the realm description
func (r *Realm) SetDescription(ctx context.Context, description string) error {
	return r.configure(ctx, model.DescriptionUpdate{Description: &description})
}

func (r *Realm) configure(ctx context.Context, update model.DescriptionUpdate) error {
	body := model.ConfigurationUpdate{
		Description: update,
		Options:     model.ConfigOptions{TexturePacksRequired: true},
	}
	return r.do(ctx, http.MethodPost, r.session.endpoints.Configuration(r.ID()), nil, requests.WithBody(body))
}

// Address fetches the join info and parses its "host:port" address
func (r *Realm) Address(ctx context.Context) (model.Address, error) {
	var info model.JoinInfo
	if err := r.do(ctx, http.MethodGet, r.session.endpoints.JoinInfo(r.ID()), &info); err != nil {
		return model.Address{}, err
	}
	return ParseAddress(info.Address)
}

// ParseAddress splits a "host:port" address on its first colon
func ParseAddress(s string) (model.Address, error) {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok || host == "" {
		return model.Address{}, fmt.Errorf("%w: %q", model.ErrInvalidAddress, s)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return model.Address{}, fmt.Errorf("%w: bad port in %q", model.ErrInvalidAddress, s)
	}
	return model.Address{Address: host, Port: port}, nil
}

// BanList fetches the block list. Each call returns new Banned objects.
func (r *Realm) BanList(ctx context.Context) ([]*Banned, error) {
	var xuids []string
	if err := r.do(ctx, http.MethodGet, r.session.endpoints.BlockList(r.ID()), &xuids); err != nil {
		return nil, err
	}
	banned := make([]*Banned, 0, len(xuids))
	for _, xuid := range xuids {
		banned = append(banned, newBanned(r, xuid))
	}
	return banned, nil
}

// Ban adds a player to the block list
func (r *Realm) Ban(ctx context.Context, player Xuider) error {
	return r.do(ctx, http.MethodPost, r.session.endpoints.BlockPlayer(r.ID(), player.Xuid()), nil)
}

// Unban removes a player from the block list
func (r *Realm) Unban(ctx context.Context, player Xuider) error {
	return r.do(ctx, http.MethodDelete, r.session.endpoints.BlockPlayer(r.ID(), player.Xuid()), nil)
}

func (r *Realm) do(ctx context.Context, method, endpoint string, result any, opts ...requests.Option) error {
	if err := r.session.requests.Do(ctx, method, endpoint, result, opts...); err != nil {
		r.session.logger.Debug("realm request failed",
			slog.Int64("realm_id", int64(r.ID())),
			slog.String("method", method),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
