package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/realmtest"
)

type CLISuite struct {
	suite.Suite
	api *realmtest.Server
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.T().Setenv("BERAPI_SESSION_TICKET", "ticket")
	s.T().Setenv("BERAPI_ACCOUNT_HASH", "hash")
	s.T().Setenv("BERAPI_REDIS_URL", "")

	s.api = realmtest.New(s.T())
	s.api.AddRealm(model.RealmJSON{
		ID:         101,
		OwnerUUID:  "1",
		Name:       "Alpha",
		Motd:       "First",
		State:      model.RealmStateClosed,
		MaxPlayers: 10,
		DaysLeft:   12,
		Players: []model.PlayerJSON{
			{UUID: "2", Online: true, Permission: "MEMBER"},
			{UUID: "3", Operator: true, Permission: "OPERATOR"},
		},
	})
	s.api.AddRealm(model.RealmJSON{ID: 202, OwnerUUID: "2", Name: "Beta", State: model.RealmStateOpen})
	s.api.AddProfile("1", map[string]string{model.SettingGamertag: "Owner"})
	s.api.AddProfile("2", map[string]string{model.SettingGamertag: "Steve", model.SettingGamerscore: "50"})
	s.api.AddProfile("3", map[string]string{model.SettingGamertag: "Alex"})
	s.api.SetJoinInfo(101, model.JoinInfo{Address: "192.168.1.5:19132"})
}

func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--realms-url", s.api.URL + "/realms",
		"--xbox-url", s.api.URL + "/xbox",
	}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) TestRealmsList() {
	out, err := s.run("realms", "list")
	s.Require().NoError(err)
	s.Contains(out, "Realms (2):")
	s.Contains(out, "  - 101 Alpha [CLOSED]")
	s.Contains(out, "  - 202 Beta [OPEN]")

	call, ok := s.api.LastCall(realmtest.RouteRealms)
	s.Require().True(ok)
	s.Equal("XBL3.0 x=hash;ticket", call.Authorization)
}

func (s *CLISuite) TestRealmsListJSON() {
	out, err := s.run("-o", "json", "realms", "list", "--owner", "2")
	s.Require().NoError(err)

	var realms []RealmView
	s.Require().NoError(json.Unmarshal([]byte(out), &realms))
	s.Require().Len(realms, 1)
	s.Equal(int64(202), realms[0].ID)
	s.Equal("OPEN", realms[0].State)
}

func (s *CLISuite) TestRealmsGet() {
	out, err := s.run("realms", "get", "101")
	s.Require().NoError(err)
	s.Contains(out, "Realm: Alpha (101)")
	s.Contains(out, "Description: First")
	s.Contains(out, "Players: 2/10")
	s.Contains(out, "Days Left: 12")
}

func (s *CLISuite) TestRealmsGetErrors() {
	_, err := s.run("realms", "get", "abc")
	s.ErrorContains(err, "invalid realm id")

	_, err = s.run("realms", "get", "999")
	s.ErrorIs(err, model.ErrRealmNotFound)
}

func (s *CLISuite) TestRealmsInvite() {
	s.api.AddInvite("code123", 202)

	out, err := s.run("realms", "invite", "code123")
	s.Require().NoError(err)
	s.Contains(out, "Realm: Beta (202)")
}

func (s *CLISuite) TestRealmsOpenClose() {
	out, err := s.run("realms", "open", "101")
	s.Require().NoError(err)
	s.Equal("Realm 101 opened\n", out)
	r, _ := s.api.Realm(101)
	s.Equal(model.RealmStateOpen, r.State)

	_, err = s.run("realms", "close", "101")
	s.Require().NoError(err)
	r, _ = s.api.Realm(101)
	s.Equal(model.RealmStateClosed, r.State)
}

func (s *CLISuite) TestRealmsRenameAndDescribe() {
	_, err := s.run("realms", "rename", "101", "Gamma")
	s.Require().NoError(err)
	_, err = s.run("-o", "json", "realms", "describe", "101", "Hardcore")
	s.Require().NoError(err)

	r, _ := s.api.Realm(101)
	s.Equal("Gamma", r.Name)
	s.Equal("Hardcore", r.Motd)
}

func (s *CLISuite) TestRealmsAddress() {
	out, err := s.run("realms", "address", "101")
	s.Require().NoError(err)
	s.Equal("192.168.1.5:19132\n", out)

	_, err = s.run("realms", "address", "202")
	s.ErrorIs(err, model.ErrInvalidAddress)
}

func (s *CLISuite) TestPlayersList() {
	out, err := s.run("players", "list", "101", "--profiles")
	s.Require().NoError(err)
	s.Contains(out, "Players (2):")
	s.Contains(out, "  - Steve (2) - online")
	s.Contains(out, "  - Alex (3) - offline [operator]")
}

func (s *CLISuite) TestPlayersListOnlineJSON() {
	out, err := s.run("-o", "json", "players", "list", "101", "--online")
	s.Require().NoError(err)

	var players []PlayerView
	s.Require().NoError(json.Unmarshal([]byte(out), &players))
	s.Require().Len(players, 1)
	s.Equal("2", players[0].Xuid)
	s.Empty(players[0].Gamertag)
	s.Equal(0, s.api.CallCount(realmtest.RouteProfile))
}

func (s *CLISuite) TestPlayersListFiltersExclusive() {
	_, err := s.run("players", "list", "101", "--online", "--offline")
	s.Error(err)
}

func (s *CLISuite) TestPlayersGetByName() {
	out, err := s.run("players", "get", "101", "Alex", "--name")
	s.Require().NoError(err)
	s.Contains(out, "Alex (3) - offline [operator]")
}

func (s *CLISuite) TestPlayersGetNotMember() {
	_, err := s.run("players", "get", "101", "404")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *CLISuite) TestPlayersOwner() {
	out, err := s.run("players", "owner", "101")
	s.Require().NoError(err)
	s.Equal("Owner: Owner (1)\n", out)
}

func (s *CLISuite) TestBans() {
	_, err := s.run("bans", "add", "101", "3")
	s.Require().NoError(err)
	s.Equal([]string{"3"}, s.api.BlockList(101))

	out, err := s.run("bans", "list", "101", "--profiles")
	s.Require().NoError(err)
	s.Contains(out, "Banned (1):")
	s.Contains(out, "  - Alex (3)")

	_, err = s.run("bans", "remove", "101", "3")
	s.Require().NoError(err)
	s.Empty(s.api.BlockList(101))
}

func (s *CLISuite) TestProfile() {
	out, err := s.run("-o", "json", "profile", "2")
	s.Require().NoError(err)

	var profile ProfileView
	s.Require().NoError(json.Unmarshal([]byte(out), &profile))
	s.Equal("2", profile.Xuid)
	s.Equal("Steve", profile.Settings[model.SettingGamertag])
	s.Equal("50", profile.Settings[model.SettingGamerscore])
}

func (s *CLISuite) TestProfileByName() {
	out, err := s.run("profile", "--name", "Owner")
	s.Require().NoError(err)
	s.Contains(out, "Profile: 1")
	s.Contains(out, "Gamertag: Owner")
}

func (s *CLISuite) TestMissingCredentials() {
	s.T().Setenv("BERAPI_SESSION_TICKET", "")

	_, err := s.run("realms", "list")
	s.ErrorContains(err, "BERAPI_SESSION_TICKET")
	s.Empty(s.api.Calls())
}

func (s *CLISuite) TestServerError() {
	s.api.Fail(realmtest.RouteRealms, 503)

	_, err := s.run("realms", "list")
	s.ErrorContains(err, "503")
}
