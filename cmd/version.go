package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wharfd/wharfd/internal/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Println(server.Version)
			return
		}
		fmt.Printf("%s %s\n", color.CyanString("wharfd"), server.Version)
		fmt.Printf("Commit: %s\n", buildCommit)
		fmt.Printf("Built:  %s\n", buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Show only version number")
}
