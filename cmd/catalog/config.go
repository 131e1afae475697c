package main

import (
	"time"

	"github.com/dipdup-net/go-lib/config"
)

// Config -
type Config struct {
	config.Config `yaml:",inline"`
	Catalog       Catalog `yaml:"catalog"`
	LogLevel      string  `yaml:"log_level" validate:"omitempty,oneof=debug trace info warn error fatal panic"`
}

// Substitute -
func (c *Config) Substitute() error {
	return c.Config.Substitute()
}

// Load -
func Load(filename string) (cfg Config, err error) {
	err = config.Parse(filename, &cfg)
	return
}

// Catalog -
type Catalog struct {
	IndexerName     string `yaml:"indexer_name" validate:"omitempty"`
	TvlTTL          uint64 `yaml:"tvl_ttl" validate:"omitempty,min=1"`
	MonitorInterval uint64 `yaml:"monitor_interval" validate:"omitempty,min=1"`
	MaxPageSize     int    `yaml:"max_page_size" validate:"omitempty,min=1"`
	MaxCPU          int    `yaml:"max_cpu,omitempty" validate:"omitempty,min=1"`
}

// TTL -
func (c Catalog) TTL() time.Duration {
	if c.TvlTTL == 0 {
		return time.Second * 5
	}
	return time.Duration(c.TvlTTL) * time.Second
}

// Interval -
func (c Catalog) Interval() time.Duration {
	if c.MonitorInterval == 0 {
		return c.TTL()
	}
	return time.Duration(c.MonitorInterval) * time.Second
}
