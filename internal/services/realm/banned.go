package realm

// Banned is a player on a realm's block list
type Banned struct {
	profile

	realm *Realm
}

func newBanned(r *Realm, xuid string) *Banned {
	b := &Banned{realm: r}
	b.bind(r.session, xuid)
	return b
}

// Xuid returns the banned player's xuid
func (b *Banned) Xuid() string {
	return b.xuid
}

// Realm returns the realm the player is banned from
func (b *Banned) Realm() *Realm {
	return b.realm
}
