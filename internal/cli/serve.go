package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/api"
)

func NewServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local database over HTTP",
		Long: `Run the story-memory API on top of the local database until interrupted.
Other story-memory commands can then read from it with --api.`,
		Example: `  # Serve on the configured address (default 127.0.0.1:8080)
  story-memory serve

  # Serve on another port
  story-memory serve --port 9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides server.port)")

	return cmd
}

func runServe(cmd *cobra.Command, port int) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.sync()

	if port != 0 {
		e.cfg.Server.Port = port
	}

	store, err := e.store()
	if err != nil {
		return err
	}
	defer store.Close()

	e.logger.Info("serving stories",
		zap.String("db", store.Path()),
		zap.String("addr", e.cfg.Server.Addr()),
	)
	return api.NewServer(store, e.cfg.Server.Addr(), e.logger).Run(cmd.Context())
}
