package realm

import "github.com/MCBE-Utilities/BeRAPI/internal/model"

// Player is a member of a realm's player list.
// Online, operator and permission state is frozen at the time the player was
// first cached; profile fields are fetched on first access and kept forever.
type Player struct {
	profile

	realm    *Realm
	snapshot model.PlayerJSON
}

func newPlayer(r *Realm, snapshot model.PlayerJSON) *Player {
	p := &Player{realm: r, snapshot: snapshot}
	p.bind(r.session, snapshot.UUID)
	return p
}

// Xuid returns the player's xuid
func (p *Player) Xuid() string {
	return p.snapshot.UUID
}

// IsOperator reports whether the player was an operator when cached
func (p *Player) IsOperator() bool {
	return p.snapshot.Operator
}

// IsOnline reports whether the player was online when cached
func (p *Player) IsOnline() bool {
	return p.snapshot.Online
}

// Permission returns the player's permission level when cached
func (p *Player) Permission() string {
	return p.snapshot.Permission
}

// Accepted reports whether the player had accepted the realm invite
func (p *Player) Accepted() bool {
	return p.snapshot.Accepted
}

// Snapshot returns the raw player entry the player was created from
func (p *Player) Snapshot() model.PlayerJSON {
	return p.snapshot
}

// Realm returns the realm the player belongs to
func (p *Player) Realm() *Realm {
	return p.realm
}
