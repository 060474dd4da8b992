package clock

import (
	"testing"
	"time"

	"storelocator/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UsesConfiguredZone(t *testing.T) {
	cfg := &config.Config{Directory: &config.DirectoryConfig{Timezone: "Asia/Tokyo"}}

	clk, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "Asia/Tokyo", clk.Location().String())
	assert.Equal(t, "Asia/Tokyo", clk.Now().Location().String())
}

func TestNew_DefaultsToLocal(t *testing.T) {
	clk, err := New(&config.Config{})
	require.NoError(t, err)

	assert.Equal(t, time.Local, clk.Location())
}

func TestNew_RejectsUnknownZone(t *testing.T) {
	_, err := New(&config.Config{Directory: &config.DirectoryConfig{Timezone: "Mars/Olympus"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mars/Olympus")
}

func TestDayOfWeek_FollowsClockZone(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*3600)
	// Sunday 20:00 UTC is already Monday in UTC+9.
	instant := time.Date(2024, time.January, 7, 20, 0, 0, 0, time.UTC)

	clk := NewFixed(instant, tokyo)

	assert.Equal(t, time.Monday, clk.DayOfWeek(instant))
	assert.Equal(t, instant, clk.Now().UTC())
	assert.Equal(t, tokyo, clk.Now().Location())
}
