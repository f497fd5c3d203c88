// CLASSIFICATION: COMMUNITY
// Filename: cli.go v0.3
// Date Modified: 2026-08-08
// Author: Lukas Bower
//
// ─────────────────────────────────────────────────────────────
// cohserve · CLI Scaffold
//
// Provides the Cobra root command for the cohserve binary. The
// root command itself serves; the serve wiring (flags, signal
// context) is attached by cmd/cohserve at init() time so this
// package stays a thin scaffold.
//
// Downstream binaries call `tooling.Execute()` from `main()`.
// ─────────────────────────────────────────────────────────────
package tooling

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is printed by the `version` sub-command.
const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "cohserve",
	Short: "Local development static file server",
	Long: `cohserve serves the files of a directory over HTTP for local
development, with permissive CORS headers on every response so
browser apps under development can fetch freely.

With no flags it serves the directory containing the executable
on port 8000, all interfaces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Root returns the root command so other packages can attach flags,
// run functions, and sub-commands in init().
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the CLI. Typically called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print cohserve version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("cohserve v" + version)
		},
	})
}
