package model

// Profile setting ids requested from the Xbox profile API
const (
	SettingGamertag       = "Gamertag"
	SettingGamerscore     = "Gamerscore"
	SettingGamerPicture   = "GameDisplayPicRaw"
	SettingAccountTier    = "AccountTier"
	SettingReputation     = "XboxOneRep"
	SettingPreferredColor = "PreferredColor"
	SettingRealName       = "RealName"
	SettingBio            = "Bio"
	SettingQuarantined    = "IsQuarantined"
)

// ProfileSettings is the full setting set asked for on every profile lookup.
// The API returns the set atomically, so all of it is requested even though
// only a few settings are surfaced.
var ProfileSettings = []string{
	SettingGamertag,
	SettingGamerscore,
	SettingGamerPicture,
	SettingAccountTier,
	SettingReputation,
	SettingPreferredColor,
	SettingRealName,
	SettingBio,
	SettingQuarantined,
}

// ProfileUsers is the payload of the Xbox profile settings endpoint
type ProfileUsers struct {
	ProfileUsers []UserSettings `json:"profileUsers"`
}

// UserSettings holds the settings of a single Xbox profile
type UserSettings struct {
	ID              string    `json:"id"` // xuid
	HostID          string    `json:"hostId"`
	Settings        []Setting `json:"settings"`
	IsSponsoredUser bool      `json:"isSponsoredUser"`
}

// Setting is one id/value pair of a profile
type Setting struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Lookup returns the value of the given setting id
func (u UserSettings) Lookup(id string) (string, bool) {
	for _, s := range u.Settings {
		if s.ID == id {
			return s.Value, true
		}
	}
	return "", false
}
