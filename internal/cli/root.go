package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"worldcup-dashboard/internal/dataset"
	"worldcup-dashboard/internal/model"
	"worldcup-dashboard/internal/pipeline"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags
var Version = "v1.0.0"

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "worldcup",
	Short: "FIFA World Cup winners dashboard",
	Long: `worldcup serves a dashboard of FIFA World Cup finals: a world map shaded
by the number of titles each country has won, plus lookups of a country's
title count and of the result of the final in a given year.

The same tables are available from the command line.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "worldcup %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.worldcup/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "log pipeline stages and config sources")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	setDefaults(viper.GetViper(), model.DefaultConfig())

	rootCmd.AddCommand(versionCmd)
}

// setDefaults registers every key so env vars and Unmarshal see them
func setDefaults(v *viper.Viper, d *model.Config) {
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", d.Server.IdleTimeout)
	v.SetDefault("store.dsn", d.Store.DSN)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.cleanup_interval", d.Cache.CleanupInterval)
	v.SetDefault("rate_limit.requests_per_second", d.RateLimit.RequestsPerSecond)
	v.SetDefault("rate_limit.burst", d.RateLimit.Burst)
	v.SetDefault("debug", d.Debug)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.worldcup")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// WORLDCUP_SERVER_ADDR overrides server.addr
	viper.SetEnvPrefix("WORLDCUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && debugEnabled() {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// debugEnabled reads --debug, WORLDCUP_DEBUG or the config file's debug key
func debugEnabled() bool {
	return viper.GetBool("debug")
}

// loadConfig resolves flags, env, config file and defaults into one Config
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// loadData builds the dataset and runs the aggregation pipeline
func loadData(ctx context.Context, verbose bool) (*dataset.Dataset, *pipeline.Result, error) {
	ds, err := dataset.New()
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}
	res, err := pipeline.Run(ctx, ds, verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("aggregate wins: %w", err)
	}
	return ds, res, nil
}
