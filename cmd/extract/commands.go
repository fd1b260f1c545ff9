package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/pawnplanner/internal/atlas"
	"github.com/cory-johannsen/pawnplanner/internal/config"
	"github.com/cory-johannsen/pawnplanner/internal/extract"
	"github.com/cory-johannsen/pawnplanner/internal/importer"
	"github.com/cory-johannsen/pawnplanner/internal/importer/xmldefs"
	"github.com/cory-johannsen/pawnplanner/internal/observability"
	"github.com/cory-johannsen/pawnplanner/internal/synth"
	"github.com/cory-johannsen/pawnplanner/internal/watch"
)

// jobOrder is the order "all" runs jobs in.
var jobOrder = []string{"backstories", "traits", "genes", "bodyparts"}

// app carries state shared by all subcommands once the root command has
// loaded configuration.
type app struct {
	configPath string
	cfg        config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "extract",
		Short: "Extract planner data from game XML definitions",
		Long: `extract reads XML definition files and writes, per dataset, a .ts data
module (output.data_dir) and a .js script file (output.page_dir, or
output.docs_dir for bodyparts). Gene icons, and bodypart graphics when a
graphics directory is given, are packed into PNG atlases in output.page_dir.

Directories given as arguments override paths.defs and paths.graphics.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger, err := observability.NewLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to YAML configuration file (default: built-in defaults and PAWN_* env)")

	jobCmd := func(name, short string, maxArgs int) *cobra.Command {
		use := name + " [defsDir]"
		if maxArgs == 2 {
			use += " [graphicsDir]"
		}
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.MaximumNArgs(maxArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd.Context(), []string{name}, args)
			},
		}
	}
	root.AddCommand(
		jobCmd("backstories", "Extract childhood and adulthood backstories", 1),
		jobCmd("traits", "Extract traits and their degrees", 1),
		jobCmd("genes", "Extract genes, add aptitude and drug genes, and pack gene icons", 2),
		jobCmd("bodyparts", "Extract head, hair and beard types", 2),
		&cobra.Command{
			Use:   "all [defsDir] [graphicsDir]",
			Short: "Run every extraction: backstories, traits, genes, bodyparts",
			Args:  cobra.MaximumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd.Context(), jobOrder, args)
			},
		},
		&cobra.Command{
			Use:   "watch <job|all> [defsDir] [graphicsDir]",
			Short: "Run an extraction, then rerun it whenever definitions or graphics change",
			Args:  cobra.RangeArgs(1, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				names := []string{args[0]}
				if args[0] == "all" {
					names = jobOrder
				}
				return a.watch(cmd.Context(), names, args[1:])
			},
		},
	)
	return root
}

// applyArgs overrides configured paths with positional directory arguments.
func (a *app) applyArgs(args []string) error {
	if len(args) > 0 {
		a.cfg.Paths.Defs = importer.CleanPath(args[0])
	}
	if len(args) > 1 {
		a.cfg.Paths.Graphics = importer.CleanPath(args[1])
	}
	if a.cfg.Paths.Defs == "" {
		return fmt.Errorf("no definition directory: pass one as an argument or set paths.defs")
	}
	return nil
}

// jobs builds the named jobs from configuration.
func (a *app) jobs(names []string) ([]importer.Job, error) {
	cfg := a.cfg
	tile := atlas.TileSize{Width: cfg.Atlas.TileWidth, Height: cfg.Atlas.TileHeight}
	jobs := make([]importer.Job, 0, len(names))
	for _, name := range names {
		switch name {
		case "backstories":
			jobs = append(jobs, &xmldefs.BackstoryJob{Exclude: cfg.Exclude.Backstories})
		case "traits":
			jobs = append(jobs, &xmldefs.TraitJob{
				Exclude: cfg.Exclude.Traits,
				Options: extract.TraitOptions{
					KeepEmptyDegrees:   cfg.Conventions.KeepEmptyDegrees,
					MergeExclusionTags: cfg.Conventions.MergeExclusionTags,
				},
			})
		case "genes":
			tables, err := synth.LoadTables()
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, &xmldefs.GeneJob{
				Exclude: cfg.Exclude.Genes,
				Atlas:   xmldefs.AtlasOptions{Dir: cfg.Paths.Graphics, Tile: tile, File: cfg.Atlas.GenesFile},
				Tables:  tables,
			})
		case "bodyparts":
			jobs = append(jobs, &xmldefs.BodyPartJob{
				Exclude: cfg.Exclude.BodyParts,
				Atlas:   xmldefs.AtlasOptions{Dir: cfg.Paths.Graphics, Tile: tile, File: cfg.Atlas.BodyPartsFile},
			})
		default:
			return nil, fmt.Errorf("unknown job %q (want one of %v or all)", name, jobOrder)
		}
	}
	return jobs, nil
}

func (a *app) run(ctx context.Context, names, args []string) error {
	if err := a.applyArgs(args); err != nil {
		return err
	}
	jobs, err := a.jobs(names)
	if err != nil {
		return err
	}
	return importer.New(a.cfg.Output, a.logger).Run(ctx, a.cfg.Paths.Defs, jobs...)
}

func (a *app) watch(ctx context.Context, names, args []string) error {
	if err := a.applyArgs(args); err != nil {
		return err
	}
	jobs, err := a.jobs(names)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	imp := importer.New(a.cfg.Output, a.logger)
	rerun := func(ctx context.Context) error {
		return imp.Run(ctx, a.cfg.Paths.Defs, jobs...)
	}
	if err := rerun(ctx); err != nil {
		a.logger.Error("initial run failed", zap.Error(err))
	}

	roots := []string{a.cfg.Paths.Defs}
	if a.cfg.Paths.Graphics != "" {
		roots = append(roots, a.cfg.Paths.Graphics)
	}
	w, err := watch.New(roots, []string{".xml", ".png"}, a.cfg.Watch.Debounce, a.logger, rerun)
	if err != nil {
		return err
	}
	defer w.Close()

	a.logger.Info("watching for changes", zap.Strings("roots", roots), zap.Strings("jobs", names))
	return w.Run(ctx)
}
