package season

import (
	"fmt"
	"time"

	"github.com/merveatik/dietbot/internal/domain"
)

// Resolve maps today onto a season using the config boundaries. Malformed
// boundaries resolve to summer so generation can still proceed; the error
// tells the caller the config needs fixing.
func Resolve(today time.Time, cfg Config) (domain.Season, error) {
	start, err := boundary(today.Year(), cfg.SummerStart, today.Location())
	if err != nil {
		return domain.SeasonSummer, fmt.Errorf("summer_start: %w", err)
	}
	end, err := boundary(today.Year(), cfg.SummerEnd, today.Location())
	if err != nil {
		return domain.SeasonSummer, fmt.Errorf("summer_end: %w", err)
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if !day.Before(start) && day.Before(end) {
		return domain.SeasonSummer, nil
	}
	return domain.SeasonWinter, nil
}

// boundary parses an MM-DD string into a date in the given year.
func boundary(year int, mmdd string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("01-02", mmdd, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing boundary %q: %w", mmdd, err)
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// DBFileName returns the seasonal database file for a season.
func DBFileName(s domain.Season) string {
	if s == domain.SeasonWinter {
		return "dietbot_winter.db"
	}
	return "dietbot_summer.db"
}
