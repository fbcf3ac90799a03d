package model

// RealmID uniquely identifies a realm
type RealmID int64

// RealmState is the open/closed state reported by the Realms API
type RealmState string

const (
	RealmStateOpen   RealmState = "OPEN"
	RealmStateClosed RealmState = "CLOSED"
)

// ServersJSON is the payload of the realms list endpoint
type ServersJSON struct {
	Servers []RealmJSON `json:"servers"`
}

// RealmJSON is a realm as returned by the Realms API.
// Fields the API sends as null are kept as pointers or omitted.
type RealmJSON struct {
	ID                   RealmID      `json:"id"`
	RemoteSubscriptionID string       `json:"remoteSubscriptionId"`
	Owner                string       `json:"owner"`
	OwnerUUID            string       `json:"ownerUUID"`
	Name                 string       `json:"name"`
	Motd                 string       `json:"motd"`
	DefaultPermission    string       `json:"defaultPermission"`
	State                RealmState   `json:"state"`
	DaysLeft             int          `json:"daysLeft"`
	Expired              bool         `json:"expired"`
	ExpiredTrial         bool         `json:"expiredTrial"`
	GracePeriod          bool         `json:"gracePeriod"`
	WorldType            string       `json:"worldType"`
	Players              []PlayerJSON `json:"players"`
	MaxPlayers           int          `json:"maxPlayers"`
	MinigameName         *string      `json:"minigameName"`
	MinigameID           *int64       `json:"minigameId"`
	MinigameImage        *string      `json:"minigameImage"`
	ActiveSlot           int          `json:"activeSlot"`
	Member               bool         `json:"member"`
	ClubID               int64        `json:"clubId"`
}

// PlayerJSON is one entry of a realm's player list
type PlayerJSON struct {
	UUID       string  `json:"uuid"` // xuid
	Name       *string `json:"name"`
	Operator   bool    `json:"operator"`
	Accepted   bool    `json:"accepted"`
	Online     bool    `json:"online"`
	Permission string  `json:"permission"`
}

// JoinInfo is the payload of the realm join endpoint
type JoinInfo struct {
	Address       string `json:"address"`
	PendingUpdate bool   `json:"pendingUpdate"`
}

// Address is a parsed realm server address
type Address struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
}

// ConfigurationUpdate is the body of the realm configuration endpoint
type ConfigurationUpdate struct {
	Description DescriptionUpdate `json:"description"`
	Options     ConfigOptions     `json:"options"`
}

// DescriptionUpdate carries the optional name and description changes
type DescriptionUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ConfigOptions are the realm options sent with every configuration update
type ConfigOptions struct {
	TexturePacksRequired bool `json:"texturePacksRequired"`
}
