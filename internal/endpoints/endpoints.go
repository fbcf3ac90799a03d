package endpoints

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
)

const (
	// DefaultRealmsURL is the Bedrock Realms API base
	DefaultRealmsURL = "https://pocket.realms.minecraft.net/"
	// DefaultXboxURL is the Xbox Live profile API base
	DefaultXboxURL = "https://profile.xboxlive.com/"
)

// Endpoints builds absolute URLs for the Realms and Xbox APIs
type Endpoints struct {
	realms string
	xbox   string
}

// New creates Endpoints for the given base URLs. Empty values use the defaults.
func New(realmsURL, xboxURL string) Endpoints {
	if realmsURL == "" {
		realmsURL = DefaultRealmsURL
	}
	if xboxURL == "" {
		xboxURL = DefaultXboxURL
	}
	return Endpoints{
		realms: strings.TrimSuffix(realmsURL, "/"),
		xbox:   strings.TrimSuffix(xboxURL, "/"),
	}
}

// Default returns Endpoints for the production APIs
func Default() Endpoints {
	return New("", "")
}

func (e Endpoints) realm(format string, args ...any) string {
	return e.realms + "/" + fmt.Sprintf(format, args...)
}

// Realms lists every realm visible to the session
func (e Endpoints) Realms() string {
	return e.realm("worlds")
}

// Realm returns a single realm, including its current player list
func (e Endpoints) Realm(id model.RealmID) string {
	return e.realm("worlds/%d", id)
}

// JoinInfo returns the address a client connects to
func (e Endpoints) JoinInfo(id model.RealmID) string {
	return e.realm("worlds/%d/join", id)
}

// RealmByInvite resolves an invite code to a realm
func (e Endpoints) RealmByInvite(code string) string {
	return e.realm("worlds/v1/link/%s", url.PathEscape(code))
}

// BlockList lists the xuids banned from a realm
func (e Endpoints) BlockList(id model.RealmID) string {
	return e.realm("worlds/%d/blocklist", id)
}

// BlockPlayer adds (POST) or removes (DELETE) a xuid from the block list
func (e Endpoints) BlockPlayer(id model.RealmID, xuid string) string {
	return e.realm("worlds/%d/blocklist/%s", id, segment(xuid))
}

// Open opens a realm
func (e Endpoints) Open(id model.RealmID) string {
	return e.realm("worlds/%d/open", id)
}

// Close closes a realm
func (e Endpoints) Close(id model.RealmID) string {
	return e.realm("worlds/%d/close", id)
}

// Configuration updates a realm's name, description and options
func (e Endpoints) Configuration(id model.RealmID) string {
	return e.realm("worlds/%d/configuration", id)
}

// ProfileByXuid returns profile settings for a xuid
func (e Endpoints) ProfileByXuid(xuid string) string {
	return fmt.Sprintf("%s/users/xuid(%s)/profile/settings", e.xbox, segment(xuid))
}

// ProfileByGamertag returns profile settings for a gamertag
func (e Endpoints) ProfileByGamertag(gamertag string) string {
	return fmt.Sprintf("%s/users/gt(%s)/profile/settings", e.xbox, url.PathEscape(gamertag))
}

// segment escapes s as a single path segment, including dot segments
func segment(s string) string {
	if s == "." || s == ".." {
		return strings.ReplaceAll(s, ".", "%2E")
	}
	return url.PathEscape(s)
}
