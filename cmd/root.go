// Package cmd holds the wharfd command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wharfd/wharfd/internal/server"
)

var (
	cfgFile string

	buildCommit = "none"
	buildDate   = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wharfd",
	Short: "wharfd - HTTP facade for the Docker Engine",
	Long: `wharfd exposes container, image, volume and network operations of a
local Docker Engine as a small JSON API.`,
}

// Execute runs the command tree with build metadata stamped in.
func Execute(version, commit, date string) {
	if version != "" {
		server.Version = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./wharfd.yml)")
}
