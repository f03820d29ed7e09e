package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Constants
const (
	DefaultConfigFile = ".hcalrc"
	ConfigEnvVar      = "HCALRC"

	// Config keys
	KeyCountry      = "country"
	KeyHolidayColor = "holiday_color"
	KeyFirstWeekday = "first_weekday"

	DefaultFirstWeekday = time.Sunday

	// Color modes
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the resolved user configuration
type Config struct {
	Country      string
	HolidayColor string
	FirstWeekday time.Weekday
}

// DefaultConfig returns the configuration used without an rc file
func DefaultConfig() Config {
	return Config{
		HolidayColor: DefaultHolidayColor,
		FirstWeekday: DefaultFirstWeekday,
	}
}

// ConfigPath returns $HCALRC, or ~/.hcalrc when it is unset
func ConfigPath() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFile
	}
	return filepath.Join(home, DefaultConfigFile)
}

// LoadConfig reads KEY=VALUE lines from path. A missing file yields the
// defaults; any other read error is returned together with the defaults.
func LoadConfig(path string, log zerolog.Logger) (Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("no config file")
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(values, log), nil
}

// ParseConfig resolves raw key/value pairs. Keys are case-insensitive;
// invalid values are logged and replaced by their default.
func ParseConfig(values map[string]string, log zerolog.Logger) Config {
	cfg := DefaultConfig()

	for key, value := range values {
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case KeyCountry:
			cfg.Country = value
		case KeyHolidayColor:
			if _, ok := ColorCode(value); !ok {
				log.Warn().Str("color", value).Msgf("unknown holiday color, using %s", DefaultHolidayColor)
				continue
			}
			cfg.HolidayColor = strings.ToLower(value)
		case KeyFirstWeekday:
			wd, err := ParseWeekday(value)
			if err != nil {
				log.Warn().Err(err).Msg("ignoring first_weekday")
				continue
			}
			cfg.FirstWeekday = wd
		default:
			log.Debug().Str("key", key).Msg("unknown config key")
		}
	}

	return cfg
}

// ParseWeekday accepts a weekday name, its three-letter abbreviation, or a
// number from 0 (Sunday) to 6 (Saturday)
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday %d out of range 0-6", n)
		}
		return time.Weekday(n), nil
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}
