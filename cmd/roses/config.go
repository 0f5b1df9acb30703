package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/std"
	"github.com/charlieabtbl/cosmicroses/store"
	"github.com/tendermint/tendermint/libs/log"
	"gopkg.in/yaml.v3"
)

// Config is the content of the client configuration file.
type Config struct {
	// DB is the path of the bbolt database file.
	DB string `yaml:"db"`
	// LogLevel is one of debug, info, error or none.
	LogLevel string `yaml:"log_level"`
	// Key is the path of the private key file used to sign calls.
	Key string `yaml:"key"`
}

func defaultConfig() Config {
	home := os.Getenv("HOME")
	return Config{
		DB:       filepath.Join(home, ".roses", "state.db"),
		LogLevel: "error",
		Key:      filepath.Join(home, ".roses", "priv.key"),
	}
}

// env returns the value of an environment variable if provided (even if
// empty) or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// flConfig registers the configuration file flag.
func flConfig(fl *flag.FlagSet) *string {
	return fl.String("config", env("ROSES_CONFIG", filepath.Join(os.Getenv("HOME"), ".roses", "config.yaml")),
		"Path to the YAML configuration file. You can use ROSES_CONFIG environment variable to set it.")
}

// loadConfig reads the configuration file. A missing file is not an error,
// default values are used instead. Values not set in the file keep their
// defaults.
func loadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return &conf, nil
	case err != nil:
		return nil, fmt.Errorf("cannot read configuration: %s", err)
	}
	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return nil, fmt.Errorf("cannot parse configuration %q: %s", path, err)
	}
	return &conf, nil
}

// newLogger returns a logger writing to w, filtered to the configured
// level.
func newLogger(w io.Writer, level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", err)
	}
	return log.NewFilter(logger, opt).With("module", "roses"), nil
}

// openRuntime opens the database and returns a runtime operating on it.
// The returned function must be called to release the database.
func openRuntime(conf *Config) (*app.Runtime, func() error, error) {
	logger, err := newLogger(os.Stderr, conf.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	db, err := store.OpenBoltStore(conf.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open database: %s", err)
	}
	return std.NewRuntime(db, logger), db.Close, nil
}
