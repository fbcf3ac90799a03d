package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/services/auth"
	"github.com/MCBE-Utilities/BeRAPI/internal/testutil"
)

type staticIdentities map[auth.Party]model.Identity

func (s staticIdentities) Identity(_ context.Context, party auth.Party) (model.Identity, error) {
	identity, ok := s[party]
	if !ok {
		return model.Identity{}, auth.ErrNoIdentity
	}
	return identity, nil
}

var testIdentities = staticIdentities{
	auth.PartyRealms: {SessionTicket: "realms-ticket", AccountHash: "realms-hash"},
	auth.PartyXbox:   {SessionTicket: "xbox-ticket", AccountHash: "xbox-hash"},
}

func newTestManager(t *testing.T, handler http.HandlerFunc) (*Manager, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewManager(testIdentities, srv.Client(), testutil.NopLogger()), srv
}

func TestDoSetsHeaders(t *testing.T) {
	var got http.Header
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	})

	err := m.Get(context.Background(), srv.URL+"/worlds", nil)
	require.NoError(t, err)

	assert.Equal(t, "*/*", got.Get("Accept"))
	assert.Equal(t, "gzip, deflate, br", got.Get("Accept-Encoding"))
	assert.Equal(t, "en-US,en;q=0.5", got.Get("Accept-Language"))
	assert.Equal(t, "1.18.31", got.Get("client-version"))
	assert.Equal(t, "XBL3.0 x=realms-hash;realms-ticket", got.Get("Authorization"))
	assert.Equal(t, "MCPE/UWP", got.Get("User-Agent"))
	assert.Empty(t, got.Get("Content-Type"))
}

func TestDoUsesPartyIdentity(t *testing.T) {
	var authHeader string
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
	})

	err := m.Get(context.Background(), srv.URL, nil, WithParty(auth.PartyXbox))
	require.NoError(t, err)
	assert.Equal(t, "XBL3.0 x=xbox-hash;xbox-ticket", authHeader)
}

func TestDoIdentityOverride(t *testing.T) {
	var authHeader string
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
	})

	override := model.Identity{SessionTicket: "other-ticket", AccountHash: "other-hash"}
	err := m.Get(context.Background(), srv.URL, nil, WithIdentity(override))
	require.NoError(t, err)
	assert.Equal(t, "XBL3.0 x=other-hash;other-ticket", authHeader)
}

func TestDoMissingIdentityIsTransportError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()
	m := NewManager(staticIdentities{}, srv.Client(), testutil.NopLogger())

	err := m.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, auth.ErrNoIdentity)
	assert.Equal(t, 0, calls)
}

func TestDoAppendsQuery(t *testing.T) {
	var query url.Values
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
	})

	err := m.Get(context.Background(), srv.URL+"/settings?a=1", nil,
		WithQuery(url.Values{"settings": {"Gamertag,Gamerscore"}}))
	require.NoError(t, err)
	assert.Equal(t, "1", query.Get("a"))
	assert.Equal(t, "Gamertag,Gamerscore", query.Get("settings"))
}

func TestPostSendsJSONBody(t *testing.T) {
	var body map[string]any
	var contentType string
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&body)
	})

	err := m.Post(context.Background(), srv.URL, map[string]string{"name": "Realm"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Realm", body["name"])
}

func TestDoDecodesResult(t *testing.T) {
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"address":"1.2.3.4:19132","pendingUpdate":false}`))
	})

	var info model.JoinInfo
	err := m.Get(context.Background(), srv.URL, &info)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3.4:19132", info.Address)
}

func TestDoNon2xxIsError(t *testing.T) {
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Forbidden"))
	})

	err := m.Put(context.Background(), srv.URL+"/worlds/1/open", nil)
	require.Error(t, err)

	var re *Error
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.MethodPut, re.Method)
	assert.Equal(t, http.StatusForbidden, re.StatusCode)
	assert.Equal(t, "Forbidden", string(re.Body))
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, http.StatusForbidden, StatusCode(err))
}

func TestDoNotFoundMatchesSentinel(t *testing.T) {
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	err := m.Get(context.Background(), srv.URL, nil)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestDoMalformedBodyIsError(t *testing.T) {
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"servers": [`))
	})

	var servers model.ServersJSON
	err := m.Get(context.Background(), srv.URL, &servers)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, http.StatusOK, StatusCode(err))
}

func TestDoNetworkErrorIsError(t *testing.T) {
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	err := m.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, 0, StatusCode(err))
}

func TestDoDecodesGzip(t *testing.T) {
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, _ = zw.Write([]byte(`{"address":"gz:1"}`))
		_ = zw.Close()
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(buf.Bytes())
	})

	var info model.JoinInfo
	require.NoError(t, m.Get(context.Background(), srv.URL, &info))
	assert.Equal(t, "gz:1", info.Address)
}

func TestDoDecodesBrotli(t *testing.T) {
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		bw := brotli.NewWriter(&buf)
		_, _ = bw.Write([]byte(`{"address":"br:1"}`))
		_ = bw.Close()
		w.Header().Set("Content-Encoding", "br")
		_, _ = w.Write(buf.Bytes())
	})

	var info model.JoinInfo
	require.NoError(t, m.Get(context.Background(), srv.URL, &info))
	assert.Equal(t, "br:1", info.Address)
}

func TestDoLogsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()
	logger, buf := testutil.BufferLogger()
	m := NewManager(testIdentities, srv.Client(), logger)

	require.NoError(t, m.Delete(context.Background(), srv.URL+"/worlds/1/blocklist/2"))
	assert.Contains(t, buf.String(), `"msg":"request completed"`)
	assert.Contains(t, buf.String(), `"method":"DELETE"`)
}

func TestSendSuccessCallback(t *testing.T) {
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	var value any
	var isError bool
	calls := 0
	m.Send(context.Background(), http.MethodGet, srv.URL, func(v any, e bool) {
		calls++
		value, isError = v, e
	})

	assert.Equal(t, 1, calls)
	assert.False(t, isError)
	raw, ok := value.(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
}

func TestSendErrorCallback(t *testing.T) {
	m, srv := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, strings.Repeat("x", 10))
	})

	var value any
	var isError bool
	m.Send(context.Background(), http.MethodGet, srv.URL, func(v any, e bool) {
		value, isError = v, e
	})

	assert.True(t, isError)
	re, ok := value.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, re.StatusCode)
}
