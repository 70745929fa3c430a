// Package config loads the scoring service's configuration with viper and
// keeps it live-reloaded via fsnotify, mirroring the node-configuration
// pattern used across the other services in this stack.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"scoreserver/internal/mahjong"
)

// Config is the root configuration document for cmd/scoreserver.
type Config struct {
	AppName    string    `mapstructure:"appName"`
	HttpPort   int       `mapstructure:"httpPort"`
	MetricPort int       `mapstructure:"metricPort"`
	Log        LogConf   `mapstructure:"log"`
	Jwt        JwtConf   `mapstructure:"jwt"`
	Mongo      MongoConf `mapstructure:"mongo"`
	Nats       NatsConf  `mapstructure:"nats"`
	Cache      CacheConf `mapstructure:"cache"`
	Rules      RulesConf `mapstructure:"rules"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type JwtConf struct {
	Secret string `mapstructure:"secret"`
	Expire int    `mapstructure:"expire"`
}

type MongoConf struct {
	Url         string `mapstructure:"url"`
	Db          string `mapstructure:"db"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	MinPoolSize int    `mapstructure:"minPoolSize"`
	MaxPoolSize int    `mapstructure:"maxPoolSize"`
}

type NatsConf struct {
	URL         string `mapstructure:"url"`
	RoomTopic   string `mapstructure:"roomTopic"`
	ResultTopic string `mapstructure:"resultTopic"`
}

type CacheConf struct {
	MaxCostBytes int64 `mapstructure:"maxCostBytes"`
	TTLSeconds   int   `mapstructure:"ttlSeconds"`
}

// RulesConf carries the ruleset toggles the Open Questions in the scoring
// spec left to the deployer: whether the optional "under the sea"/"under
// the river" yaku are enabled by default.
type RulesConf struct {
	EnableUnderTheSea   bool `mapstructure:"enableUnderTheSea"`
	EnableUnderTheRiver bool `mapstructure:"enableUnderTheRiver"`
}

// Registry builds the yaku registry this deployment scores against: the
// required predicates plus whichever of RegisterOptional's under-the-sea/
// under-the-river entries this config turns on.
func (r RulesConf) Registry() []mahjong.Entry {
	registry := mahjong.Registry()
	if !r.EnableUnderTheSea && !r.EnableUnderTheRiver {
		return registry
	}
	for _, entry := range mahjong.RegisterOptional() {
		switch entry.Name {
		case "under_the_sea":
			if r.EnableUnderTheSea {
				registry = append(registry, entry)
			}
		case "under_the_river":
			if r.EnableUnderTheRiver {
				registry = append(registry, entry)
			}
		}
	}
	return registry
}

// Load reads configFile into a fresh Config and installs a watch that
// re-unmarshals on change. The returned pointer is updated in place by the
// watch callback, so callers should read through it rather than copy it.
func Load(configFile string) (*Config, error) {
	cfg := new(Config)

	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		if err := v.Unmarshal(cfg); err != nil {
			// A reload that fails to unmarshal is ignored without crashing
			// the process; the error is not logged or returned.
			return
		}
	})

	return cfg, nil
}
