package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/starseer/internal/adapter/file"
	"github.com/couchcryptid/starseer/internal/adapter/parquet"
	"github.com/couchcryptid/starseer/internal/config"
	"github.com/couchcryptid/starseer/internal/observability"
	"github.com/couchcryptid/starseer/internal/pipeline"
	"github.com/couchcryptid/starseer/internal/skybox"
)

// app carries state shared by the subcommands once config is loaded.
type app struct {
	envFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "starseer",
		Short:         "Build a starfile from the Bright Star Catalogue",
		Long:          "Reads bsc5.dat and TempToColor.dat and writes one starfile line per star with a J2000 position, a color and a visual magnitude.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.LoadFile(a.envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			a.logger = observability.NewLogger(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.build(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load settings from this .env file instead of ./.env")

	root.AddCommand(newRenderCmd(a), newVersionCmd())
	return root
}

func newRenderCmd(a *app) *cobra.Command {
	var starfile, out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a starfile as a cube map skybox image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if starfile != "" {
				a.cfg.StarfilePath = starfile
			}
			if out != "" {
				a.cfg.SkyboxOut = out
			}
			return a.render(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&starfile, "starfile", "", "starfile to render (default $STARSEER_STARFILE)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output image, .png .jpg or .tif (default $SKYBOX_OUT)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "starseer "+version)
		},
	}
}

func (a *app) build(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	table, err := file.LoadColorTable(cfg.ColorTablePath)
	if err != nil {
		return err
	}
	logger.Info("color table loaded", "path", cfg.ColorTablePath, "entries", table.Len())

	var opts []pipeline.Option
	if cfg.ParquetPath != "" {
		exp, err := parquet.NewExporter(cfg.ParquetPath, cfg.ParquetCompression, logger)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithExporter(exp))
	}

	p := pipeline.New(
		file.NewCatalogReader(cfg.CatalogPath, logger),
		pipeline.NewTransformer(),
		file.NewStarfileWriter(cfg.StarfilePath, logger),
		table, logger, metrics, opts...,
	)
	report, runErr := p.Run(ctx)

	if cfg.MetricsTextfile != "" {
		if err := observability.WriteTextfile(reg, cfg.MetricsTextfile); err != nil {
			logger.Error("metrics textfile not written", "path", cfg.MetricsTextfile, "error", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("run complete",
		"lines", report.Lines,
		"written", report.Written,
		"skipped", report.Skipped,
		"parse_errors", report.ParseErrors,
		"starfile", cfg.StarfilePath,
	)
	return nil
}

func (a *app) render(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	bg, err := colorful.Hex(cfg.SkyboxBackground)
	if err != nil {
		return fmt.Errorf("skybox background: %w", err)
	}
	r, err := skybox.NewRenderer(skybox.Options{
		FaceSize:        cfg.SkyboxFaceSize,
		MagnitudeWeight: cfg.SkyboxMagnitudeWeight,
		Background:      bg,
	}, logger)
	if err != nil {
		return err
	}

	stars, skipped, err := file.ReadStarfile(ctx, cfg.StarfilePath, logger)
	if err != nil {
		return err
	}
	logger.Info("starfile read", "path", cfg.StarfilePath, "stars", len(stars), "skipped", skipped)

	if err := skybox.Save(cfg.SkyboxOut, r.Render(stars)); err != nil {
		return err
	}
	logger.Info("skybox written", "path", cfg.SkyboxOut, "face_size", cfg.SkyboxFaceSize)
	return nil
}
