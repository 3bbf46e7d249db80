package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Rate period policies. The two names cover the historical variants of the
// reduced-rate window; which one a deployment bills under is a tariff
// decision, so it lives in configuration rather than code.
const (
	PolicyWeekendEvening = "weekend-evening"
	PolicyNightWindow    = "night-window"
)

// ClassRate is a flat standard/reduced per-minute rate pair.
type ClassRate struct {
	Standard float64 `mapstructure:"standard"`
	Reduced  float64 `mapstructure:"reduced"`
}

// TariffConfig carries the rating policy knobs: which reduced-rate window
// applies, the billing block granularity, and the flat rates used for
// domestic classes and unresolvable destinations.
type TariffConfig struct {
	Policy       string    `mapstructure:"policy"`
	BlockSeconds int       `mapstructure:"blockSeconds"`
	Default      ClassRate `mapstructure:"default"`
	Landline     ClassRate `mapstructure:"landline"`
	Mobile       ClassRate `mapstructure:"mobile"`
}

func DefaultTariffConfig() TariffConfig {
	return TariffConfig{
		Policy:       PolicyWeekendEvening,
		BlockSeconds: 60,
		Default:      ClassRate{Standard: 0.10, Reduced: 0.05},
		Landline:     ClassRate{Standard: 0.05, Reduced: 0.03},
		Mobile:       ClassRate{Standard: 0.08, Reduced: 0.05},
	}
}

// TariffConfigHolder serves the current tariff config and hot-reloads it
// when tariff.yml changes on disk.
type TariffConfigHolder struct {
	current atomic.Value // holds TariffConfig
}

func NewTariffConfigHolder() (*TariffConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("tariff")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/callrater/config") // Volume-mounted config
	v.AddConfigPath("/etc/callrater")            // System config
	v.AddConfigPath(".")                         // Current directory (dev mode)

	v.SetEnvPrefix("CALLRATER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultTariffConfig()
	v.SetDefault("tariff.policy", defaults.Policy)
	v.SetDefault("tariff.blockSeconds", defaults.BlockSeconds)
	v.SetDefault("tariff.default", defaults.Default)
	v.SetDefault("tariff.landline", defaults.Landline)
	v.SetDefault("tariff.mobile", defaults.Mobile)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg TariffConfig
	if err := v.UnmarshalKey("tariff", &cfg); err != nil {
		return nil, err
	}
	if err := validateTariffConfig(cfg); err != nil {
		return nil, err
	}

	holder := &TariffConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated TariffConfig
		if err := v.UnmarshalKey("tariff", &updated); err != nil {
			log.Printf("[tariff-config] reload failed: %v", err)
			return
		}
		if err := validateTariffConfig(updated); err != nil {
			log.Printf("[tariff-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[tariff-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticTariffHolder wraps a fixed config; used by tests and the batch
// converter where file watching is unwanted.
func NewStaticTariffHolder(cfg TariffConfig) (*TariffConfigHolder, error) {
	if err := validateTariffConfig(cfg); err != nil {
		return nil, err
	}
	holder := &TariffConfigHolder{}
	holder.current.Store(cfg)
	return holder, nil
}

func (h *TariffConfigHolder) Get() TariffConfig {
	return h.current.Load().(TariffConfig)
}

func validateTariffConfig(cfg TariffConfig) error {
	switch cfg.Policy {
	case PolicyWeekendEvening, PolicyNightWindow:
	default:
		return fmt.Errorf("tariff.policy %q is not a known rate period policy", cfg.Policy)
	}
	switch cfg.BlockSeconds {
	case 6, 30, 60:
	default:
		return errors.New("tariff.blockSeconds must be 6, 30 or 60")
	}
	if cfg.Default.Standard <= 0 || cfg.Default.Reduced <= 0 {
		return errors.New("tariff.default rates must be positive")
	}
	return nil
}
