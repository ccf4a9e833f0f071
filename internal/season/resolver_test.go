package season

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestResolve_DefaultBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		today time.Time
		want  domain.Season
	}{
		{"mid summer", date(2025, time.July, 15), domain.SeasonSummer},
		{"summer start inclusive", date(2025, time.April, 1), domain.SeasonSummer},
		{"day before summer", date(2025, time.March, 31), domain.SeasonWinter},
		{"summer end exclusive", date(2025, time.October, 1), domain.SeasonWinter},
		{"last summer day", date(2025, time.September, 30), domain.SeasonSummer},
		{"mid winter", date(2025, time.January, 10), domain.SeasonWinter},
		{"year end", date(2025, time.December, 31), domain.SeasonWinter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.today, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_CustomBoundaries(t *testing.T) {
	cfg := Config{SummerStart: "05-15", SummerEnd: "09-15"}

	got, err := Resolve(date(2025, time.May, 14), cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.SeasonWinter, got)

	got, err = Resolve(date(2025, time.May, 15), cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.SeasonSummer, got)
}

func TestResolve_MalformedBoundaryFallsBackToSummer(t *testing.T) {
	cfg := Config{SummerStart: "not-a-date", SummerEnd: "10-01"}

	got, err := Resolve(date(2025, time.January, 10), cfg)
	assert.Error(t, err)
	assert.Equal(t, domain.SeasonSummer, got)
}

func TestDBFileName(t *testing.T) {
	assert.Equal(t, "dietbot_summer.db", DBFileName(domain.SeasonSummer))
	assert.Equal(t, "dietbot_winter.db", DBFileName(domain.SeasonWinter))
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := Config{SummerStart: "03-15", SummerEnd: "11-01"}
	require.NoError(t, SaveConfig(dir, want))

	got, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfig_PartialFileBackfillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"summer_start":"05-01"}`), 0o644))

	got, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "05-01", got.SummerStart)
	assert.Equal(t, "10-01", got.SummerEnd)
}
