package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"locstrings/internal/config"
	"locstrings/internal/diag"
	"locstrings/internal/export"
	"locstrings/internal/filetype"
	"locstrings/internal/filewalker"
	"locstrings/internal/resource"
	"locstrings/internal/store"
	"locstrings/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "locstrings",
		Short: "Extract localizable strings from Objective-C source trees",
		Long:  "Scans source files for localization calls such as NSLocalizedString(@\"...\", ...), collects the translatable strings, and exports or stores them for translation.",
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <directory>",
		Short: "Scan a source tree and collect localizable strings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outPath, _ := cmd.Flags().GetString("output")
			persist, _ := cmd.Flags().GetBool("store")
			return runExtract(args[0], format, outPath, persist)
		},
	}

	cmd.Flags().String("format", "tsv", "Export format: tsv or json")
	cmd.Flags().String("output", "resources", "Output path for extracted resources (without extension)")
	cmd.Flags().Bool("store", false, "Also persist resources to PostgreSQL (DATABASE_URL)")

	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export previously stored resources from PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outPath, _ := cmd.Flags().GetString("output")
			return runExport(format, outPath)
		},
	}

	cmd.Flags().String("format", "tsv", "Export format: tsv or json")
	cmd.Flags().String("output", "resources", "Output path for exported resources (without extension)")

	return cmd
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// connect opens a PostgreSQL pool and verifies connectivity.
func connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")

	return pool, nil
}

// runExtract handles the `extract` command.
func runExtract(inputDir, format, outPath string, persist bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	project := resource.Project{ID: cfg.ProjectID, SourceLocale: cfg.SourceLocale}

	w := newWalker(cfg)
	entries, err := w.Walk(inputDir)
	if err != nil {
		return fmt.Errorf("walk input directory: %w", err)
	}

	log.Info().Int("files", len(entries)).Msg("Starting extraction")

	// Extract files concurrently; each file owns an independent set.
	reporter := diag.LogReporter{}
	pool := worker.NewPool[filewalker.Entry, *resource.TranslationSet](cfg.WorkerCount,
		func(ctx context.Context, entry filewalker.Entry) (*resource.TranslationSet, error) {
			f := entry.Type.NewFile(entry.Path, project, reporter)
			f.Extract()
			f.Localize()
			f.Write()
			return f.TranslationSet(), nil
		},
	)
	results := pool.Execute(ctx, entries)

	// Merge per-file sets in discovery order.
	merged := resource.NewTranslationSet()
	for _, task := range results {
		merged.AddAll(task.Result)
	}

	resources := merged.All()
	log.Info().
		Int("files", len(entries)).
		Int("resources", len(resources)).
		Msg("Extraction complete")

	if persist {
		pgPool, err := connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pgPool.Close()

		st := store.NewStore(pgPool)
		if err := st.EnsureSchema(ctx); err != nil {
			return err
		}
		if _, err := st.Upsert(ctx, resources); err != nil {
			return fmt.Errorf("store resources: %w", err)
		}
	}

	return writeOut(format, outPath, resources)
}

// runExport handles the `export` command.
func runExport(format, outPath string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()

	pgPool, err := connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pgPool.Close()

	st := store.NewStore(pgPool)
	resources, err := st.GetByProject(ctx, cfg.ProjectID)
	if err != nil {
		return fmt.Errorf("load stored resources: %w", err)
	}

	return writeOut(format, outPath, resources)
}

// newWalker builds the walker with the Objective-C plugin configured from
// the environment.
func newWalker(cfg *config.Config) *filewalker.Walker {
	ftCfg := filetype.DefaultObjectiveCConfig()
	ftCfg.Datatype = cfg.Datatype
	return filewalker.NewWalker(filetype.NewObjectiveCFileType(ftCfg))
}

func writeOut(format, outPath string, resources []resource.String) error {
	switch format {
	case "json":
		if err := export.WriteJSON(outPath+".json", resources); err != nil {
			return fmt.Errorf("export JSON: %w", err)
		}
	default:
		if err := export.WriteTSV(outPath+".tsv", resources); err != nil {
			return fmt.Errorf("export TSV: %w", err)
		}
	}
	return nil
}
