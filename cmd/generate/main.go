package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vado.sa/internal/config"
	"vado.sa/internal/content"
	"vado.sa/internal/export"
	"vado.sa/internal/render"
	"vado.sa/internal/services"
)

var (
	catalog       string
	assets        string
	baseURL       string
	contactOrigin string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Write the VADO site as static files",
	Long: `Write every page, the JSON API documents and the embedded CSS and JS
to <output-dir>, ready for any static host.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("catalog") {
			cfg.CatalogFile = catalog
		}
		if flags.Changed("assets") {
			cfg.AssetDir = assets
		}
		if flags.Changed("base-url") {
			cfg.BaseURL = baseURL
		}
		if flags.Changed("contact-origin") {
			cfg.ContactOrigin = contactOrigin
		}
		if flags.Changed("verbose") {
			cfg.Verbose = verbose
		}
		logger, err := cfg.Logger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return generate(cmd.Context(), cfg, args[0], logger)
	},
}

func init() {
	rootCmd.Flags().StringVar(&catalog, "catalog", "", "YAML project catalog (default: built-in)")
	rootCmd.Flags().StringVar(&assets, "assets", "public", "directory whose images/ folder is copied")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "public origin for canonical links")
	rootCmd.Flags().StringVar(&contactOrigin, "contact-origin", "", "server origin that receives contact form posts")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every file written")
}

func generate(ctx context.Context, cfg *config.Config, outputDir string, logger *zap.Logger) error {
	projects, err := cfg.LoadProjects()
	if err != nil {
		return err
	}
	projectService, err := services.NewProjectService(projects)
	if err != nil {
		return fmt.Errorf("project catalog: %w", err)
	}
	renderer, err := render.New()
	if err != nil {
		return err
	}

	pages := services.NewPageService(projectService, content.Site(),
		services.WithBaseURL(cfg.BaseURL),
		services.WithContactOrigin(cfg.ContactOrigin),
	)
	written, err := export.New(projectService, pages, renderer, cfg.AssetDir, logger).Export(ctx, outputDir)
	if err != nil {
		return err
	}

	logger.Info("site generated", zap.String("dir", outputDir), zap.Int("files", len(written)))
	return nil
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
