package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalvas/waypoint/config"
	"github.com/vitalvas/waypoint/router"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config  string
	key     string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "waypoint",
		Short: "Inspect route tables",
		Long: `Waypoint loads a YAML route table and lets you list its routes,
match a request against it and build URLs from controller/action pairs.

When the file defines translated_routes, match and url use the
translated language router.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "routes.yaml", "YAML route configuration file")
	rootCmd.PersistentFlags().StringVar(&flags.key, "key", router.RoutesKey, "Configuration key holding the route table (not used with translated_routes)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log construction events to stderr")

	rootCmd.AddCommand(
		routesCmd(flags),
		matchCmd(flags),
		urlCmd(flags),
		versionCmd(),
	)

	return rootCmd
}

// load reads the configuration file named by the --config flag. Translated
// configurations name their tables by language, so --key is rejected for
// them.
func (f *globalFlags) load(cmd *cobra.Command) (*config.Store, error) {
	cfg, err := config.LoadFile(f.config)
	if err != nil {
		return nil, err
	}
	if translated(cfg) && cmd.Flags().Changed("key") {
		return nil, fmt.Errorf("--key cannot be used with %s", router.TranslatedRoutesKey)
	}
	return cfg, nil
}

// options returns router options for the --verbose flag.
func (f *globalFlags) options(cmd *cobra.Command) []router.Option {
	if !f.verbose {
		return nil
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	return []router.Option{router.WithLogger(logger)}
}

// translated reports whether the configuration defines per-language tables.
func translated(cfg router.Config) bool {
	_, ok := cfg.Get(router.TranslatedRoutesKey)
	return ok
}

// newRouter builds the router used by match and url. Translated configs get
// a translated LanguageRouter, configs with a languages section get a
// non-translated one and everything else a plain TableRouter.
func newRouter(cfg router.Config, flags *globalFlags, req router.Request, opts []router.Option) (router.Router, error) {
	if translated(cfg) {
		lr, err := router.NewTranslatedFromConfig(req, cfg, opts...)
		if err != nil {
			return nil, err
		}
		return lr, nil
	}

	table, err := router.TableFromConfig(cfg, flags.key)
	if err != nil {
		return nil, err
	}
	base, err := router.New(table, opts...)
	if err != nil {
		return nil, err
	}

	if _, ok := cfg.Get(router.LanguagesKey); !ok {
		return base, nil
	}
	langs, err := router.LanguagesFromConfig(cfg, router.LanguagesKey)
	if err != nil {
		return nil, err
	}
	lr, err := router.NewLanguage(req, base, langs, opts...)
	if err != nil {
		return nil, err
	}
	return lr, nil
}
