package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("ADMIN_IDS", "1,2,3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, []int64{1, 2, 3}, cfg.AdminIDs)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "studybot", cfg.DatabaseName)
	assert.Equal(t, 3000, cfg.Port)
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{1, 2}}

	assert.True(t, cfg.IsAdmin(1))
	assert.False(t, cfg.IsAdmin(3))
	assert.False(t, (&Config{}).IsAdmin(1))
}

func TestChannelURL(t *testing.T) {
	cfg := &Config{MustJoinChannel: "@studychannel"}
	assert.Equal(t, "https://t.me/studychannel", cfg.ChannelURL())
}

func TestIsKnownBranch(t *testing.T) {
	assert.True(t, IsKnownBranch("CSE"))
	assert.True(t, IsKnownBranch("AIML"))
	assert.False(t, IsKnownBranch("cse"))
	assert.False(t, IsKnownBranch("XYZ"))
}
