package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEndpoints(t *testing.T) {
	e := Default()

	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds", e.Realms())
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/42", e.Realm(42))
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/42/join", e.JoinInfo(42))
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/42/blocklist", e.BlockList(42))
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/42/blocklist/2535", e.BlockPlayer(42, "2535"))
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/42/open", e.Open(42))
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/42/close", e.Close(42))
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/42/configuration", e.Configuration(42))
	assert.Equal(t, "https://profile.xboxlive.com/users/xuid(2535)/profile/settings", e.ProfileByXuid("2535"))
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	e := New("http://127.0.0.1:8080/realms/", "http://127.0.0.1:8080/xbox")

	assert.Equal(t, "http://127.0.0.1:8080/realms/worlds", e.Realms())
	assert.Equal(t, "http://127.0.0.1:8080/xbox/users/xuid(1)/profile/settings", e.ProfileByXuid("1"))
}

func TestPathEscaping(t *testing.T) {
	e := Default()

	assert.Equal(t, "https://profile.xboxlive.com/users/gt(Alex%20The%20Great)/profile/settings",
		e.ProfileByGamertag("Alex The Great"))
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/v1/link/ab%2Fcd", e.RealmByInvite("ab/cd"))
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/42/blocklist/1%2F..%2Fopen", e.BlockPlayer(42, "1/../open"))
	assert.Equal(t, "https://pocket.realms.minecraft.net/worlds/42/blocklist/%2E%2E", e.BlockPlayer(42, ".."))
	assert.Equal(t, "https://profile.xboxlive.com/users/xuid(a%2Fb)/profile/settings", e.ProfileByXuid("a/b"))
}
