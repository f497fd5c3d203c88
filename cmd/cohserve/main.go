// CLASSIFICATION: COMMUNITY
// Filename: main.go v0.6
// Author: Lukas Bower
// Date Modified: 2026-08-10
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package main

import (
	"fmt"
	"net/http"

	"cohserve/config"
	server "cohserve/devserver/http"
	"cohserve/internal/tooling"
	"github.com/spf13/cobra"
)

var (
	flagBind       string
	flagPort       int
	flagRoot       string
	flagConfig     string
	flagAccessLog  string
	flagLiveReload bool
)

func init() {
	root := tooling.Root()
	fl := root.Flags()
	fl.StringVar(&flagBind, "bind", "", "bind address (default: all interfaces)")
	fl.IntVar(&flagPort, "port", config.DefaultPort, "listen port")
	fl.StringVar(&flagRoot, "root", "", "document root (default: directory containing the executable)")
	fl.StringVar(&flagConfig, "config", "", "path to a cohserve.toml config file")
	fl.StringVar(&flagAccessLog, "access-log", "", "append access log records to this file")
	fl.BoolVar(&flagLiveReload, "live-reload", false, "reload connected pages when files under the root change")
	root.RunE = runServe
}

// applyFlags overrides cfg with the flags the user actually set, so the
// flag > env > file > default precedence holds.
func applyFlags(cfg *config.Config) {
	fl := tooling.Root().Flags()
	if fl.Changed("bind") {
		cfg.Bind = flagBind
	}
	if fl.Changed("port") {
		cfg.Port = flagPort
	}
	if fl.Changed("root") {
		cfg.Root = flagRoot
	}
	if fl.Changed("access-log") {
		cfg.AccessLog = flagAccessLog
	}
	if fl.Changed("live-reload") {
		cfg.LiveReload = flagLiveReload
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	rootDir, err := config.ResolveRoot(cfg.Root)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Bind:       cfg.Bind,
		Port:       cfg.Port,
		Root:       rootDir,
		AccessLog:  cfg.AccessLog,
		LiveReload: cfg.LiveReload,
	})
	if err != nil {
		return err
	}

	ctx, cancel := newSignalContext(cmd.Context())
	defer cancel()
	if err := srv.Start(ctx); err != nil && err != http.ErrServerClosed {
		return err
	}
	fmt.Println("Server stopped")
	return nil
}

func main() {
	tooling.Execute()
}
