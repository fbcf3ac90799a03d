// Package realmtest provides an in-process fake of the Realms and Xbox
// profile APIs for tests.
package realmtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/MCBE-Utilities/BeRAPI/internal/endpoints"
	"github.com/MCBE-Utilities/BeRAPI/internal/model"
)

// Route names accepted by Fail
const (
	RouteRealms        = "realms"
	RouteRealm         = "realm"
	RouteJoin          = "join"
	RouteInvite        = "invite"
	RouteBlockList     = "blocklist"
	RouteBlock         = "block"
	RouteUnblock       = "unblock"
	RouteOpen          = "open"
	RouteClose         = "close"
	RouteConfiguration = "configuration"
	RouteProfile       = "profile"
	RouteProfileByName = "profile_by_name"
)

// Call is one request received by the fake
type Call struct {
	Route         string
	Method        string
	Path          string
	Query         string
	Authorization string
	Body          []byte
}

// Server is a fake Realms + Xbox API
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	realms      []*model.RealmJSON
	joinInfo    map[model.RealmID]model.JoinInfo
	invites     map[string]model.RealmID
	blocklists  map[model.RealmID][]string
	profiles    map[string]model.UserSettings
	failures    map[string]int
	calls       []Call
	profileGate chan struct{}
}

// New starts a fake server that is closed when the test ends
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		joinInfo:   make(map[model.RealmID]model.JoinInfo),
		invites:    make(map[string]model.RealmID),
		blocklists: make(map[model.RealmID][]string),
		profiles:   make(map[string]model.UserSettings),
		failures:   make(map[string]int),
	}

	r := mux.NewRouter()
	r.Use(s.record)

	realms := r.PathPrefix("/realms").Subrouter()
	realms.HandleFunc("/worlds", s.handleRealms).Methods(http.MethodGet).Name(RouteRealms)
	realms.HandleFunc("/worlds/v1/link/{code}", s.handleInvite).Methods(http.MethodGet).Name(RouteInvite)
	realms.HandleFunc("/worlds/{id:[0-9]+}", s.handleRealm).Methods(http.MethodGet).Name(RouteRealm)
	realms.HandleFunc("/worlds/{id:[0-9]+}/join", s.handleJoin).Methods(http.MethodGet).Name(RouteJoin)
	realms.HandleFunc("/worlds/{id:[0-9]+}/blocklist", s.handleBlockList).Methods(http.MethodGet).Name(RouteBlockList)
	realms.HandleFunc("/worlds/{id:[0-9]+}/blocklist/{xuid}", s.handleBlock).Methods(http.MethodPost).Name(RouteBlock)
	realms.HandleFunc("/worlds/{id:[0-9]+}/blocklist/{xuid}", s.handleUnblock).Methods(http.MethodDelete).Name(RouteUnblock)
	realms.HandleFunc("/worlds/{id:[0-9]+}/open", s.handleState(model.RealmStateOpen)).Methods(http.MethodPut).Name(RouteOpen)
	realms.HandleFunc("/worlds/{id:[0-9]+}/close", s.handleState(model.RealmStateClosed)).Methods(http.MethodPut).Name(RouteClose)
	realms.HandleFunc("/worlds/{id:[0-9]+}/configuration", s.handleConfiguration).Methods(http.MethodPost).Name(RouteConfiguration)

	xbox := r.PathPrefix("/xbox").Subrouter()
	xbox.HandleFunc("/users/xuid({xuid:[^/()]+})/profile/settings", s.handleProfile).Methods(http.MethodGet).Name(RouteProfile)
	xbox.HandleFunc("/users/gt({gamertag:[^/()]+})/profile/settings", s.handleProfileByName).Methods(http.MethodGet).Name(RouteProfileByName)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Server.Close)
	return s
}

// Endpoints returns endpoints pointing at the fake
func (s *Server) Endpoints() endpoints.Endpoints {
	return endpoints.New(s.URL+"/realms/", s.URL+"/xbox/")
}

// AddRealm adds a realm to the realm list
func (s *Server) AddRealm(realm model.RealmJSON) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.realms = append(s.realms, &realm)
}

// SetPlayers replaces the player list of a realm
func (s *Server) SetPlayers(id model.RealmID, players []model.PlayerJSON) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.findRealm(id); r != nil {
		r.Players = players
	}
}

// Realm returns a copy of the fake's current state for a realm
func (s *Server) Realm(id model.RealmID) (model.RealmJSON, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.findRealm(id); r != nil {
		return *r, true
	}
	return model.RealmJSON{}, false
}

// SetJoinInfo sets the join info returned for a realm
func (s *Server) SetJoinInfo(id model.RealmID, info model.JoinInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.joinInfo[id] = info
}

// AddInvite makes an invite code resolve to a realm
func (s *Server) AddInvite(code string, id model.RealmID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invites[code] = id
}

// SetBlockList replaces the block list of a realm
func (s *Server) SetBlockList(id model.RealmID, xuids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocklists[id] = slices.Clone(xuids)
}

// BlockList returns the current block list of a realm
func (s *Server) BlockList(id model.RealmID) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.blocklists[id])
}

// AddProfile registers an Xbox profile with the given settings
func (s *Server) AddProfile(xuid string, settings map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := model.UserSettings{ID: xuid, HostID: xuid}
	for _, id := range model.ProfileSettings {
		if v, ok := settings[id]; ok {
			user.Settings = append(user.Settings, model.Setting{ID: id, Value: v})
		}
	}
	s.profiles[xuid] = user
}

// Fail makes every request on a route answer with status
func (s *Server) Fail(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = status
}

// Recover undoes Fail for a route
func (s *Server) Recover(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, route)
}

// HoldProfiles makes profile requests wait until the returned release func is called
func (s *Server) HoldProfiles() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.profileGate = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { close(gate) })
	}
}

// Calls returns every request received so far
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

// CallCount returns how many requests hit a route
func (s *Server) CallCount(route string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Route == route {
			n++
		}
	}
	return n
}

// LastCall returns the latest request on a route
func (s *Server) LastCall(route string) (Call, bool) {
	calls := s.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Route == route {
			return calls[i], true
		}
	}
	return Call{}, false
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := Call{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
		}
		if route := mux.CurrentRoute(r); route != nil {
			call.Route = route.GetName()
		}
		if r.Body != nil {
			call.Body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(call.Body))
		}

		s.mu.Lock()
		s.calls = append(s.calls, call)
		status, failing := s.failures[call.Route]
		s.mu.Unlock()

		if failing {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRealms(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	servers := make([]model.RealmJSON, 0, len(s.realms))
	for _, realm := range s.realms {
		servers = append(servers, *realm)
	}
	s.mu.Unlock()

	writeJSON(w, model.ServersJSON{Servers: servers})
}

func (s *Server) handleRealm(w http.ResponseWriter, r *http.Request) {
	realm, ok := s.Realm(realmID(r))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, realm)
}

func (s *Server) handleInvite(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	id, ok := s.invites[mux.Vars(r)["code"]]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	realm, ok := s.Realm(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, realm)
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	info, ok := s.joinInfo[realmID(r)]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, map[string]any{"pendingUpdate": false})
		return
	}
	writeJSON(w, info)
}

func (s *Server) handleBlockList(w http.ResponseWriter, r *http.Request) {
	list := s.BlockList(realmID(r))
	if list == nil {
		list = []string{}
	}
	writeJSON(w, list)
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	id, xuid := realmID(r), mux.Vars(r)["xuid"]
	s.mu.Lock()
	if !slices.Contains(s.blocklists[id], xuid) {
		s.blocklists[id] = append(s.blocklists[id], xuid)
	}
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnblock(w http.ResponseWriter, r *http.Request) {
	id, xuid := realmID(r), mux.Vars(r)["xuid"]
	s.mu.Lock()
	s.blocklists[id] = slices.DeleteFunc(s.blocklists[id], func(x string) bool { return x == xuid })
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleState(state model.RealmState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		realm := s.findRealm(realmID(r))
		if realm != nil {
			realm.State = state
		}
		s.mu.Unlock()
		if realm == nil {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, true)
	}
}

func (s *Server) handleConfiguration(w http.ResponseWriter, r *http.Request) {
	var update model.ConfigurationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	realm := s.findRealm(realmID(r))
	if realm != nil {
		if update.Description.Name != nil {
			realm.Name = *update.Description.Name
		}
		if update.Description.Description != nil {
			realm.Motd = *update.Description.Description
		}
	}
	s.mu.Unlock()

	if realm == nil {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.waitProfileGate()

	s.mu.Lock()
	user, ok := s.profiles[mux.Vars(r)["xuid"]]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, model.ProfileUsers{ProfileUsers: []model.UserSettings{user}})
}

func (s *Server) handleProfileByName(w http.ResponseWriter, r *http.Request) {
	s.waitProfileGate()

	gamertag := mux.Vars(r)["gamertag"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.profiles {
		if v, ok := user.Lookup(model.SettingGamertag); ok && strings.EqualFold(v, gamertag) {
			writeJSON(w, model.ProfileUsers{ProfileUsers: []model.UserSettings{user}})
			return
		}
	}
	http.NotFound(w, r)
}

func (s *Server) waitProfileGate() {
	s.mu.Lock()
	gate := s.profileGate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (s *Server) findRealm(id model.RealmID) *model.RealmJSON {
	for _, r := range s.realms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func realmID(r *http.Request) model.RealmID {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return model.RealmID(id)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
