package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordnet/internal/config"
	"github.com/katalvlaran/wordnet/internal/logging"
	"github.com/katalvlaran/wordnet/internal/server"
	"github.com/katalvlaran/wordnet/internal/telemetry"
	"github.com/katalvlaran/wordnet/outcast"
	"github.com/katalvlaran/wordnet/wordnet"
)

type app struct {
	v *viper.Viper
}

func newRootCmd() (*cobra.Command, error) {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:           "wordnet",
		Short:         "wordnet answers semantic relatedness queries over a WordNet noun hierarchy",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	config.PersistentFlags(cmd.PersistentFlags())
	if err := a.v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	serve := a.serveCmd()
	config.ServeFlags(serve.Flags())
	if err := a.v.BindPFlags(serve.Flags()); err != nil {
		return nil, err
	}

	cmd.AddCommand(a.distanceCmd())
	cmd.AddCommand(a.sapCmd())
	cmd.AddCommand(a.outcastCmd())
	cmd.AddCommand(a.nounsCmd())
	cmd.AddCommand(a.isNounCmd())
	cmd.AddCommand(serve)
	cmd.AddCommand(a.configCmd())

	return cmd, nil
}

// setup loads the configuration and installs the logger.
func (a *app) setup(ctx context.Context) (context.Context, *config.Config, error) {
	cfg, err := config.Load(a.v)
	if err != nil {
		return nil, nil, err
	}
	ctx, err = logging.Init(ctx,
		logging.WithLogLevel(cfg.LogLevel),
		logging.WithLogFormat(cfg.LogFormat),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}

	return ctx, cfg, nil
}

// index loads the configured synsets and hypernyms.
func (a *app) index(cmd *cobra.Command) (context.Context, *config.Config, *wordnet.WordNet, error) {
	ctx, cfg, err := a.setup(cmd.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	wn, err := wordnet.Load(ctx, cfg.Synsets, cfg.Hypernyms, wordnet.WithLogger(ctxzap.Extract(ctx)))
	if err != nil {
		return nil, nil, nil, err
	}

	return ctx, cfg, wn, nil
}

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance NOUN NOUN",
		Short: "Print the shortest ancestral path length between two nouns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, wn, err := a.index(cmd)
			if err != nil {
				return err
			}
			d, err := wn.Distance(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
			return err
		},
	}
}

func (a *app) sapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sap NOUN NOUN",
		Short: "Print the common ancestor synset on a shortest ancestral path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, wn, err := a.index(cmd)
			if err != nil {
				return err
			}
			label, err := wn.SAP(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
			return err
		},
	}
}

func (a *app) outcastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outcast NOUN...",
		Short: "Print the noun least related to the others",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, wn, err := a.index(cmd)
			if err != nil {
				return err
			}
			oc, err := outcast.New(wn,
				outcast.WithCacheSize(cfg.CacheSize),
				outcast.WithLogger(ctxzap.Extract(ctx)),
			)
			if err != nil {
				return err
			}
			odd, err := oc.OutcastContext(ctx, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), odd)
			return err
		},
	}
}

func (a *app) nounsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nouns",
		Short: "Print every noun, one per line, in ascending order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, wn, err := a.index(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, n := range wn.Nouns() {
				if _, err := fmt.Fprintln(out, n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) isNounCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is-noun NOUN",
		Short: "Print whether a term is a noun of the hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, wn, err := a.index(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(wn.IsNoun(args[0])))
			return err
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the query API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, wn, err := a.index(cmd)
			if err != nil {
				return err
			}
			l := ctxzap.Extract(ctx)

			tcfg := telemetry.DefaultConfig()
			tcfg.ServiceVersion = version
			tcfg.TraceExporter = cfg.TraceExporter
			tcfg.MetricExporter = cfg.MetricExporter
			tcfg.OTLPEndpoint = cfg.OTLPEndpoint
			shutdown, err := telemetry.Init(ctx, tcfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					l.Warn("telemetry shutdown", zap.Error(err))
				}
			}()

			oc, err := outcast.New(wn, outcast.WithCacheSize(cfg.CacheSize), outcast.WithLogger(l))
			if err != nil {
				return err
			}
			srv, err := server.New(wn, oc,
				server.WithLogger(l),
				server.WithShutdownTimeout(cfg.ShutdownTimeout),
			)
			if err != nil {
				return err
			}

			return srv.Run(ctx, cfg.ListenAddr)
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Decode(a.v)
			if err != nil {
				return err
			}
			return config.Write(cmd.OutOrStdout(), cfg)
		},
	}
}
