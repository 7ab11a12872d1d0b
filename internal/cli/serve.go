package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"worldcup-dashboard/internal/api"
	"worldcup-dashboard/internal/api/handler"
	"worldcup-dashboard/internal/cache"
	"worldcup-dashboard/internal/store"
	"worldcup-dashboard/pkg/router"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Serve builds the win table, loads the finals into the match store and
serves the dashboard page and its JSON API until interrupted.

Example:
  worldcup serve
  worldcup serve --addr :9000 --debug
  WORLDCUP_CACHE_ENABLED=false worldcup serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8050", "listen address")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, res, err := loadData(ctx, cfg.Debug)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Store.DSN)
	if err != nil {
		return fmt.Errorf("open match store: %w", err)
	}
	defer st.Close()

	if err := st.LoadMatches(ctx, res.Matches); err != nil {
		return fmt.Errorf("load match store: %w", err)
	}
	log.Printf("✅ Loaded %d finals, %d countries, %d titles attributed", len(res.Matches), res.Wins.Len(), res.Wins.Total())

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	r := router.New()
	if cfg.RateLimit.RequestsPerSecond > 0 {
		r.Use(router.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst).Middleware("/api/"))
	}
	api.RegisterRoutes(r, handler.NewDashboard(ds, res.Wins, st, c, cfg.Cache.TTL))

	return r.Start(ctx, cfg.Server.Addr, router.ServerOptions{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})
}
