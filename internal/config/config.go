package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const prefix = "LISTCTL"

const (
	OrderLexical = "lexical"
	OrderNumeric = "numeric"

	FormatJSON = "json"
	FormatText = "text"
)

type Config struct {
	LogLevel   logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs   bool         `envconfig:"LOG_TO_ECS" default:"false"`
	Order      string       `envconfig:"ORDER" default:"lexical"`
	IgnoreCase bool         `envconfig:"IGNORE_CASE" default:"false"`
	Format     string       `envconfig:"FORMAT" default:"json"`
}

func GetConfig() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process(prefix, cfg); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Order {
	case OrderLexical, OrderNumeric:
	default:
		return fmt.Errorf("unknown order %q", c.Order)
	}

	switch c.Format {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	return nil
}
