package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/services/realm"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RealmView:
		o.printRealm(v)
	case []RealmView:
		o.printRealms(v)
	case []PlayerView:
		o.printPlayers(v)
	case PlayerView:
		o.printPlayer(v)
	case []BannedView:
		o.printBanned(v)
	case OwnerView:
		o.printf("Owner: %s (%s)\n", v.Name, v.Xuid)
	case model.Address:
		o.printf("%s:%d\n", v.Address, v.Port)
	case ProfileView:
		o.printProfile(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

// RealmView is the printable form of a realm
type RealmView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerXuid   string `json:"owner_xuid"`
	State       string `json:"state"`
	Expired     bool   `json:"expired"`
	DaysLeft    int    `json:"days_left"`
	MaxPlayers  int    `json:"max_players"`
	WorldType   string `json:"world_type"`
	ClubID      int64  `json:"club_id"`
	Players     int    `json:"players"`
}

// PlayerView is the printable form of a realm member
type PlayerView struct {
	Xuid       string `json:"xuid"`
	Gamertag   string `json:"gamertag,omitempty"`
	Online     bool   `json:"online"`
	Operator   bool   `json:"operator"`
	Permission string `json:"permission"`
	Accepted   bool   `json:"accepted"`
}

// BannedView is the printable form of a block list entry
type BannedView struct {
	Xuid     string `json:"xuid"`
	Gamertag string `json:"gamertag,omitempty"`
}

// OwnerView is the printable form of a realm owner
type OwnerView struct {
	Xuid string `json:"xuid"`
	Name string `json:"name"`
}

// ProfileView is the printable form of an Xbox profile
type ProfileView struct {
	Xuid     string            `json:"xuid"`
	Settings map[string]string `json:"settings"`
}

func newRealmView(r *realm.Realm) RealmView {
	return RealmView{
		ID:          int64(r.ID()),
		Name:        r.Name(),
		Description: r.Description(),
		OwnerXuid:   r.OwnerXuid(),
		State:       string(r.State()),
		Expired:     r.Expired(),
		DaysLeft:    r.DaysLeft(),
		MaxPlayers:  r.MaxPlayers(),
		WorldType:   r.WorldType(),
		ClubID:      r.ClubID(),
		Players:     len(r.Snapshot().Players),
	}
}

func newPlayerView(p *realm.Player) PlayerView {
	return PlayerView{
		Xuid:       p.Xuid(),
		Online:     p.IsOnline(),
		Operator:   p.IsOperator(),
		Permission: p.Permission(),
		Accepted:   p.Accepted(),
	}
}

func newProfileView(user model.UserSettings) ProfileView {
	settings := make(map[string]string, len(user.Settings))
	for _, s := range user.Settings {
		settings[s.ID] = s.Value
	}
	return ProfileView{Xuid: user.ID, Settings: settings}
}

func (o *Output) printRealm(r RealmView) {
	o.printf("Realm: %s (%d)\n", r.Name, r.ID)
	if r.Description != "" {
		o.printf("Description: %s\n", r.Description)
	}
	o.printf("State: %s\n", r.State)
	o.printf("Owner: %s\n", r.OwnerXuid)
	o.printf("Players: %d/%d\n", r.Players, r.MaxPlayers)
	if r.Expired {
		o.printf("Expired: yes\n")
	} else {
		o.printf("Days Left: %d\n", r.DaysLeft)
	}
}

func (o *Output) printRealms(realms []RealmView) {
	o.printf("Realms (%d):\n", len(realms))
	for _, r := range realms {
		o.printf("  - %d %s [%s]\n", r.ID, r.Name, r.State)
	}
}

func (o *Output) printPlayer(p PlayerView) {
	name := p.Xuid
	if p.Gamertag != "" {
		name = fmt.Sprintf("%s (%s)", p.Gamertag, p.Xuid)
	}
	status := "offline"
	if p.Online {
		status = "online"
	}
	opStr := ""
	if p.Operator {
		opStr = " [operator]"
	}
	o.printf("  - %s - %s%s\n", name, status, opStr)
}

func (o *Output) printPlayers(players []PlayerView) {
	o.printf("Players (%d):\n", len(players))
	for _, p := range players {
		o.printPlayer(p)
	}
}

func (o *Output) printBanned(banned []BannedView) {
	o.printf("Banned (%d):\n", len(banned))
	for _, b := range banned {
		if b.Gamertag != "" {
			o.printf("  - %s (%s)\n", b.Gamertag, b.Xuid)
		} else {
			o.printf("  - %s\n", b.Xuid)
		}
	}
}

func (o *Output) printProfile(p ProfileView) {
	o.printf("Profile: %s\n", p.Xuid)
	ids := make([]string, 0, len(p.Settings))
	for id := range p.Settings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		o.printf("%s: %s\n", id, p.Settings[id])
	}
}
