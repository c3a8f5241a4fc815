package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rhyrak/class-scheduler/internal/printer"
	"github.com/rhyrak/class-scheduler/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP interface",
	Long: `Starts an HTTP server where clients create sessions, add teachers,
subjects, classrooms and time slots, and generate schedules.

Sessions are kept in memory and are lost when the server stops.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(log, cfg.DelimiterRune())
		if err := srv.Run(ctx, addr); err != nil {
			log.Error("server stopped", zap.Error(err))
			return printer.Error("HTTP server failed", err.Error(), []string{
				"Check that " + addr + " is free or pass --addr",
			})
		}
		log.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
