package realm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/requests"
	"github.com/MCBE-Utilities/BeRAPI/internal/services/auth"
)

type profileState int

const (
	profileEmpty profileState = iota
	profileLoading
	profileFilled
)

// profile is the lazily filled Xbox profile cache shared by Player and Banned.
// The first accessor fetches every setting at once; accessors arriving while
// that fetch is in flight wait for it instead of issuing their own. A failed
// fetch leaves the cache empty. Once filled it is never invalidated. A caller
// whose context ends stops waiting without cancelling the shared fetch.
type profile struct {
	xuid    string
	session *session

	fill singleflight.Group

	mu       sync.Mutex
	state    profileState
	settings map[string]string
}

func (p *profile) bind(s *session, xuid string) {
	p.session = s
	p.xuid = xuid
}

// Gamertag returns the player's gamertag
func (p *profile) Gamertag(ctx context.Context) (string, error) {
	return p.Setting(ctx, model.SettingGamertag)
}

// Gamerscore returns the player's gamerscore
func (p *profile) Gamerscore(ctx context.Context) (int, error) {
	v, err := p.Setting(ctx, model.SettingGamerscore)
	if err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid gamerscore %q: %w", v, err)
	}
	return score, nil
}

// AvatarURL returns the URL of the player's gamer picture
func (p *profile) AvatarURL(ctx context.Context) (string, error) {
	return p.Setting(ctx, model.SettingGamerPicture)
}

// AccountTier returns the player's account tier (Gold, Silver)
func (p *profile) AccountTier(ctx context.Context) (string, error) {
	return p.Setting(ctx, model.SettingAccountTier)
}

// Setting returns any of the cached profile settings by id
func (p *profile) Setting(ctx context.Context, id string) (string, error) {
	settings, err := p.load(ctx)
	if err != nil {
		return "", err
	}
	v, ok := settings[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", model.ErrSettingMissing, id)
	}
	return v, nil
}

// ProfileLoaded reports whether the profile cache has been filled
func (p *profile) ProfileLoaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == profileFilled
}

func (p *profile) load(ctx context.Context) (map[string]string, error) {
	if settings, ok := p.cached(); ok {
		return settings, nil
	}

	// The shared fetch outlives any single caller; each caller waits on its own ctx
	fetchCtx := context.WithoutCancel(ctx)
	ch := p.fill.DoChan(p.xuid, func() (any, error) {
		// A fill may have completed between cached() and DoChan
		if settings, ok := p.cached(); ok {
			return settings, nil
		}

		p.setState(profileLoading, nil)
		user, err := fetchProfile(fetchCtx, p.session, p.session.endpoints.ProfileByXuid(p.xuid))
		if err != nil {
			p.setState(profileEmpty, nil)
			return nil, err
		}

		settings := make(map[string]string, len(user.Settings))
		for _, s := range user.Settings {
			settings[s.ID] = s.Value
		}
		p.setState(profileFilled, settings)
		return settings, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[string]string), nil
	}
}

func (p *profile) cached() (map[string]string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings, p.state == profileFilled
}

func (p *profile) setState(state profileState, settings map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
	p.settings = settings
}

// fetchProfile requests the full profile setting set from the Xbox API
func fetchProfile(ctx context.Context, s *session, endpoint string) (model.UserSettings, error) {
	var result model.ProfileUsers
	err := s.requests.Do(ctx, http.MethodGet, endpoint, &result,
		requests.WithParty(auth.PartyXbox),
		requests.WithQuery(url.Values{"settings": {strings.Join(model.ProfileSettings, ",")}}),
	)
	if err != nil {
		return model.UserSettings{}, err
	}
	if len(result.ProfileUsers) == 0 {
		return model.UserSettings{}, model.ErrProfileNotFound
	}
	return result.ProfileUsers[0], nil
}
