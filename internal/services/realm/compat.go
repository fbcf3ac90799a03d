package realm

import (
	"context"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
)

// The methods in this file are the legacy sentinel surface: every failure,
// whether the request failed, the response was malformed or nothing matched,
// collapses to false or nil. Use the error-returning methods to tell them apart.

// TryOpen opens the realm and reports success
func (r *Realm) TryOpen(ctx context.Context) bool {
	return r.Open(ctx) == nil
}

// TryClose closes the realm and reports success
func (r *Realm) TryClose(ctx context.Context) bool {
	return r.Close(ctx) == nil
}

// TryRename renames the realm and reports success
func (r *Realm) TryRename(ctx context.Context, name string) bool {
	return r.Rename(ctx, name) == nil
}

// TrySetDescription changes the description and reports success
func (r *Realm) TrySetDescription(ctx context.Context, description string) bool {
	return r.SetDescription(ctx, description) == nil
}

// TryBan bans a player and reports success
func (r *Realm) TryBan(ctx context.Context, player Xuider) bool {
	return r.Ban(ctx, player) == nil
}

// TryUnban unbans a player and reports success
func (r *Realm) TryUnban(ctx context.Context, player Xuider) bool {
	return r.Unban(ctx, player) == nil
}

// TryAddress returns the join address, or false on any failure
func (r *Realm) TryAddress(ctx context.Context) (model.Address, bool) {
	addr, err := r.Address(ctx)
	return addr, err == nil
}

// FindByID returns the realm with the given id, or nil
func (m *Manager) FindByID(ctx context.Context, id model.RealmID) *Realm {
	r, err := m.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return r
}

// FindByOwnerXuid returns the realms owned by xuid, or nil
func (m *Manager) FindByOwnerXuid(ctx context.Context, xuid string) []*Realm {
	realms, err := m.GetByOwnerXuid(ctx, xuid)
	if err != nil {
		return nil
	}
	return realms
}

// FindByInviteCode returns the realm behind an invite code, or nil
func (m *Manager) FindByInviteCode(ctx context.Context, code string) *Realm {
	r, err := m.GetByInviteCode(ctx, code)
	if err != nil {
		return nil
	}
	return r
}

// FindByXuid returns the cached player with the given xuid, or nil
func (pm *PlayerManager) FindByXuid(ctx context.Context, xuid string) *Player {
	p, err := pm.GetByXuid(ctx, xuid)
	if err != nil {
		return nil
	}
	return p
}

// FindByName returns the player with the given gamertag, or nil
func (pm *PlayerManager) FindByName(ctx context.Context, name string) *Player {
	p, err := pm.GetByName(ctx, name)
	if err != nil {
		return nil
	}
	return p
}
