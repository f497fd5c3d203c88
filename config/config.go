// CLASSIFICATION: COMMUNITY
// Filename: config.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-07-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package config resolves the server configuration once at startup.
// Precedence is defaults, then an optional TOML file, then environment
// variables; CLI flags are applied on top by the command layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultPort is the listen port used when nothing overrides it.
const DefaultPort = 8000

// defaultConfigFile is picked up from the working directory when present.
const defaultConfigFile = "cohserve.toml"

const (
	envBind       = "COHSERVE_BIND"
	envPort       = "COHSERVE_PORT"
	envRoot       = "COHSERVE_ROOT"
	envAccessLog  = "COHSERVE_ACCESS_LOG"
	envLiveReload = "COHSERVE_LIVE_RELOAD"
)

// Config fixes the server for the process lifetime. A zero Root means
// "directory containing the executable", resolved via ResolveRoot.
type Config struct {
	Bind       string `toml:"bind"`
	Port       int    `toml:"port"`
	Root       string `toml:"root"`
	AccessLog  string `toml:"access_log"`
	LiveReload bool   `toml:"live_reload"`
}

// Default returns the built-in configuration: port 8000, all interfaces,
// executable directory as document root, no access log, live reload off.
func Default() Config {
	return Config{Port: DefaultPort}
}

// Load resolves configuration from defaults, an optional TOML file and the
// environment. path may be empty, in which case cohserve.toml in the working
// directory is used when it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// .env is optional for local overrides.
	godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(envBind)); v != "" {
		c.Bind = v
	}
	if v := strings.TrimSpace(os.Getenv(envPort)); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", envPort, err)
		}
		c.Port = p
	}
	if v := strings.TrimSpace(os.Getenv(envRoot)); v != "" {
		c.Root = v
	}
	if v := strings.TrimSpace(os.Getenv(envAccessLog)); v != "" {
		c.AccessLog = v
	}
	if v := strings.TrimSpace(os.Getenv(envLiveReload)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", envLiveReload, err)
		}
		c.LiveReload = b
	}
	return nil
}

// Validate checks value ranges that need no filesystem access. Port 0 is
// allowed and picks an ephemeral port.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	return nil
}

// ResolveRoot turns the configured document root into an absolute directory
// path. An empty root falls back to the directory containing the running
// executable, so the binary can be dropped next to the files it serves.
func ResolveRoot(root string) (string, error) {
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("resolve executable: %w", err)
		}
		root = filepath.Dir(exe)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("document root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("document root %s is not a directory", abs)
	}
	return abs, nil
}
