package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wharfd/wharfd/internal/config"
	"github.com/wharfd/wharfd/internal/httpserve"
	"github.com/wharfd/wharfd/internal/server"
	"github.com/wharfd/wharfd/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wharfd API server",
	Long:  `Load configuration, connect to the container engine and serve the JSON API.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		cfg.Server.ListenAddr = listen
	}
	logger.GetLogger().SetLogLevel(cfg.Server.LogLevel)

	app, err := server.New(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	fmt.Printf("%s %s listening on %s\n",
		color.CyanString("wharfd"), server.Version, cfg.Server.ListenAddr)
	logger.Info("starting wharfd",
		"version", server.Version,
		"listen", cfg.Server.ListenAddr,
		"engine", cfg.Engine.Host)

	e := httpserve.New(app)
	return server.Serve(e, cfg.Server.ListenAddr)
}
