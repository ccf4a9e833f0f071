// Package season resolves which seasonal recipe database is active on a
// given date. The practitioner keeps two fully independent catalogues, one
// per season, and the boundary dates are adjustable per year.
package season

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the season boundaries as zero-padded MM-DD strings. The
// summer window is [SummerStart, SummerEnd) within a single calendar year;
// every other date is winter.
type Config struct {
	SummerStart string `json:"summer_start"`
	SummerEnd   string `json:"summer_end"`
}

// DefaultConfig returns the stock boundaries: summer from April 1st up to
// (but not including) October 1st.
func DefaultConfig() Config {
	return Config{SummerStart: "04-01", SummerEnd: "10-01"}
}

const configFileName = "season_config.json"

// LoadConfig reads the season config from dataDir, falling back to the
// defaults when the file does not exist yet.
func LoadConfig(dataDir string) (Config, error) {
	path := filepath.Join(dataDir, configFileName)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading season config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing season config: %w", err)
	}
	if cfg.SummerStart == "" {
		cfg.SummerStart = DefaultConfig().SummerStart
	}
	if cfg.SummerEnd == "" {
		cfg.SummerEnd = DefaultConfig().SummerEnd
	}
	return cfg, nil
}

// SaveConfig writes the season config into dataDir.
func SaveConfig(dataDir string, cfg Config) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding season config: %w", err)
	}
	path := filepath.Join(dataDir, configFileName)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing season config: %w", err)
	}
	return nil
}
