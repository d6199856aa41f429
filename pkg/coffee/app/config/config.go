package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	ServeRESTAddress string `envconfig:"serve_rest_address" default:":8080"`
	DatabaseDSN      string `envconfig:"database_dsn" default:"coffee:coffee@tcp(localhost:3306)/coffee?parseTime=true"`
	JWTSecret        string `envconfig:"jwt_secret" required:"true"`
	LogFile          string `envconfig:"log_file"`
}

func Parse(prefix string) (*Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return nil, errors.Wrap(err, "parse environment config")
	}
	return &c, nil
}
