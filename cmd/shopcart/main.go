package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/shopcart/internal/cliconfig"
	"github.com/bft-labs/shopcart/internal/render"
	"github.com/bft-labs/shopcart/internal/session"
	"github.com/bft-labs/shopcart/pkg/cart"
	"github.com/bft-labs/shopcart/pkg/catalog"
	"github.com/bft-labs/shopcart/pkg/log"
	"github.com/bft-labs/shopcart/pkg/state"
)

const longHelp = `Pick goods from a menu and watch the cart total.

Commands are read one per line, from stdin or from a followed feed file:
  + <n>    add one of item n      (also: inc, increase)
  - <n>    remove one of item n   (also: dec, decrease)
  # ...    comment

The footer shows the delivery fee, how far the cart is from the delivery
threshold, the total and the number of items.`

var exampleUsage = strings.TrimSpace(`
  shopcart
  shopcart --catalog goods.toml --threshold 30 --fee 25
  shopcart --follow clicks.log --state-dir ~/.shopcart/state
  shopcart --config $HOME/.shopcart/config.toml --follow clicks.log --once
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger(cfg.LogLevel)

	root := &cobra.Command{
		Use:           "shopcart",
		Short:         "Terminal shopping cart with delivery threshold tracking",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Env overrides file, flags override env.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger = cliconfig.Logger(cfg.LogLevel)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.shopcart/config.toml)")
	root.Flags().StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "goods catalog (.toml or .json); built-in demo menu when empty")
	cliconfig.DecimalVar(root.Flags(), &cfg.DeliveryThreshold, "threshold", "minimum total for delivery")
	cliconfig.DecimalVar(root.Flags(), &cfg.DeliveryFee, "fee", "flat delivery fee (display only)")
	root.Flags().StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for the session snapshot; no snapshot when empty")
	root.Flags().StringVar(&cfg.SessionID, "session-id", cfg.SessionID, "session id (generated when empty)")
	if err := root.Flags().MarkHidden("session-id"); err != nil {
		logger.Info().Err(err).Msg("failed to hide session-id flag")
	}
	root.Flags().StringVar(&cfg.FollowPath, "follow", cfg.FollowPath, "follow an append-only command feed instead of reading stdin")
	root.Flags().DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "feed re-read interval")
	root.Flags().BoolVar(&cfg.Once, "once", cfg.Once, "apply the feed as it is now and exit")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("shopcart")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliconfig.Config, logger zerolog.Logger, in io.Reader, out io.Writer) error {
	goods := catalog.Default()
	if cfg.CatalogPath != "" {
		var err error
		goods, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
	}

	c := cart.New(goods, cfg.DeliveryThreshold, cfg.DeliveryFee)

	adapter := log.NewZerologAdapterWithLogger(logger)
	opts := []session.Option{
		session.WithLogger(adapter),
		session.WithSessionID(cfg.SessionID),
	}
	if cfg.StateDir != "" {
		opts = append(opts, session.WithRepository(state.NewFileRepository(cfg.StateDir)))
	}
	s := session.New(c, opts...)

	if err := s.Start(ctx); err != nil {
		return err
	}

	logger.Info().
		Str("session", s.ID()).
		Int("goods", c.Len()).
		Str("threshold", c.DeliveryThreshold().String()).
		Str("fee", c.DeliveryFee().String()).
		Msg("session started")

	if err := render.Goods(out, c); err != nil {
		return err
	}
	if err := render.Footer(out, c); err != nil {
		return err
	}
	fmt.Fprintln(out)

	c.Subscribe(render.Listener(out, c, adapter))

	var err error
	if cfg.FollowPath != "" {
		err = s.Follow(ctx, session.FollowConfig{
			Path:         cfg.FollowPath,
			PollInterval: cfg.PollInterval,
			Once:         cfg.Once,
		})
	} else {
		err = s.Run(ctx, in)
	}
	if err != nil {
		return err
	}

	logger.Info().
		Str("session", s.ID()).
		Int("items", c.TotalQuantity()).
		Str("total", render.Money(c.TotalPrice())).
		Bool("deliverable", c.MeetsDeliveryThreshold()).
		Msg("session ended")
	return nil
}
