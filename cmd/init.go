package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const starterConfig = `# wharfd configuration. Every key can be overridden with a
# WHARFD_* environment variable, e.g. WHARFD_SERVER_LISTEN_ADDR.
server:
  listen_addr: ":5000"
  log_level: "info"
  cors:
    enabled: true
    origins: ["*"]
  rate_limit:
    enabled: false
    rps: 20
    burst: 40

engine:
  # Empty means DOCKER_HOST, then the default local socket.
  host: ""
  ping_timeout: "2s"

activity:
  enabled: true
  # dir defaults to ~/.local/share/wharfd when left empty.
  dir: ""
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter wharfd.yml in the current directory",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "wharfd.yml"
	if cfgFile != "" {
		path = cfgFile
	}

	if _, err := os.Stat(path); err == nil {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("%s already exists. Overwrite?", path),
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", color.GreenString(path))
	return nil
}
