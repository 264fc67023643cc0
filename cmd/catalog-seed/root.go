package main

import (
	"context"
	"fmt"
	"time"

	"vaif_quotes/internal/adapter/persistence/repository"
	"vaif_quotes/internal/config"
	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/infrastructure/catalogfile"
	"vaif_quotes/internal/infrastructure/database"
	"vaif_quotes/internal/infrastructure/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type seedOptions struct {
	file    string
	table   string
	dryRun  bool
	timeout time.Duration
}

// catalogWriter is satisfied by repository.CatalogDynamoRepository.
type catalogWriter interface {
	PutCatalog(ctx context.Context, c entities.Catalog) (int, error)
}

func newRootCmd() *cobra.Command {
	opts := seedOptions{}
	cmd := &cobra.Command{
		Use:   "catalog-seed",
		Short: "Load the pricing catalog into DynamoDB",
		Long: `catalog-seed reads a catalog YAML file, validates it and upserts every
record into the catalog table.

Validation rejects unknown keys, duplicated codes, non-positive multipliers,
negative feature prices and active project types missing a complexity tier.

Examples:
  catalog-seed --file configs/catalog.yaml
  catalog-seed --file configs/catalog.yaml --dry-run
  DYNAMODB_ENDPOINT=http://localhost:8000 catalog-seed --table catalog`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.table == "" {
				opts.table = cfg.Tables.Catalog
			}
			log := logging.New(cfg.Log)
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			var writer catalogWriter
			if !opts.dryRun {
				ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
				if err != nil {
					return fmt.Errorf("dynamodb client: %w", err)
				}
				writer = repository.NewCatalogDynamoRepository(ddb, opts.table)
			}
			return runSeed(ctx, cmd, opts, writer, log)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "configs/catalog.yaml", "Catalog YAML file")
	cmd.Flags().StringVar(&opts.table, "table", "", "Catalog table (default CATALOG_TABLE)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Validate only, no database writes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Timeout for the whole seed")
	return cmd
}

func runSeed(ctx context.Context, cmd *cobra.Command, opts seedOptions, writer catalogWriter, log *zap.Logger) error {
	c, err := catalogfile.Load(opts.file)
	if err != nil {
		return err
	}
	cmd.Printf("catalog %s: %d project types, %d categories, %d industries, %d features, %d technologies, %d timelines\n",
		opts.file, len(c.ProjectTypes), len(c.Categories), len(c.Industries), len(c.Features), len(c.Technologies), len(c.Timelines))

	if opts.dryRun {
		cmd.Println("dry run: catalog is valid, nothing written")
		return nil
	}

	n, err := writer.PutCatalog(ctx, c)
	if err != nil {
		log.Error("[catalog][seed] write failed", zap.String("table", opts.table), zap.Error(err))
		return err
	}
	log.Info("[catalog][seed] catalog written", zap.String("table", opts.table), zap.Int("records", n))
	cmd.Printf("wrote %d records to %s\n", n, opts.table)
	return nil
}
