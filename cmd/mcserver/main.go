package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/go-mclib/mcserver/config"
	"github.com/go-mclib/mcserver/mcserver"
)

const (
	serverProtocol = 765
	versionName    = "1.20.4"
)

func main() {
	var (
		configPath string
		hostFlag   string
		portFlag   int
	)

	rootCmd := &cobra.Command{
		Use:   "mcserver",
		Short: "A server-side Minecraft Java Edition protocol core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, hostFlag, portFlag)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "server.yml", "path to the configuration file")
	rootCmd.Flags().StringVar(&hostFlag, "host", "", "override server.host")
	rootCmd.Flags().IntVar(&portFlag, "port", 0, "override server.port")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mcserver: %s\n", err)
		os.Exit(1)
	}
}

func run(configPath, hostFlag string, portFlag int) error {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "mcserver",
		Level: hclog.Info,
	})

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if hostFlag != "" {
		cfg.Server.Host = hostFlag
	}
	if portFlag != 0 {
		cfg.Server.Port = portFlag
	}
	cfg.Validate()

	srv := mcserver.New(cfg, serverProtocol, versionName, logger, nil)
	if err := srv.Run(context.Background()); err != nil {
		return err
	}
	return nil
}
