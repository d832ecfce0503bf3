package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vado.sa/internal/config"
	"vado.sa/internal/handlers"
	"vado.sa/internal/notify"
	"vado.sa/internal/server"
	"vado.sa/internal/services"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	addr    string
	assets  string
	catalog string
	natsURL string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the VADO Consultants website",
	Long: `Serve the VADO Consultants website and its JSON API.

Configuration comes from VADO_* environment variables, .env.local and .env;
flags override both.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("addr") {
			cfg.ServerAddr = addr
		}
		if flags.Changed("assets") {
			cfg.AssetDir = assets
		}
		if flags.Changed("catalog") {
			cfg.CatalogFile = catalog
		}
		if flags.Changed("nats-url") {
			cfg.NATSURL = natsURL
		}
		if flags.Changed("verbose") {
			cfg.Verbose = verbose
		}

		logger, err = cfg.Logger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	rootCmd.Flags().StringVar(&assets, "assets", "public", "directory served under /images")
	rootCmd.Flags().StringVar(&catalog, "catalog", "", "YAML project catalog (default: built-in)")
	rootCmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server for contact messages (default: log only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func run(ctx context.Context) error {
	projects, err := cfg.LoadProjects()
	if err != nil {
		return err
	}

	var sink services.Sink = notify.NewLogSink(logger)
	if cfg.NATSURL != "" {
		natsSink, closeNATS, err := notify.ConnectNATS(cfg.NATSURL, cfg.NATSSubject, logger)
		if err != nil {
			return err
		}
		defer closeNATS()
		sink = natsSink
		logger.Info("contact messages go to nats", zap.String("subject", cfg.NATSSubject))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router, err := handlers.SetupRoutes(cfg, projects, handlers.Dependencies{
		Logger:   logger,
		Sink:     sink,
		Registry: reg,
	})
	if err != nil {
		return err
	}

	logger.Info("catalog loaded", zap.Int("projects", len(projects)))
	return server.New(cfg.ServerAddr, router, cfg.ShutdownTimeout, logger).ListenAndServe(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
