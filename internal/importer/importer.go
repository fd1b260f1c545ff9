package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/pawnplanner/internal/config"
	"github.com/cory-johannsen/pawnplanner/internal/emit"
)

// Importer runs extraction jobs and writes their outputs.
type Importer struct {
	out    config.OutputConfig
	logger *zap.Logger
}

// New constructs an Importer writing under the given output directories.
//
// Precondition: logger must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(out config.OutputConfig, logger *zap.Logger) *Importer {
	return &Importer{out: out, logger: logger}
}

// Run builds and writes each job in order, stopping at the first failure.
// A job's files are only written after its Build succeeds, so a failing job
// leaves its previous outputs in place. Every log line of one run carries
// the same run ID.
//
// Precondition: defsDir must be a readable directory.
// Postcondition: every job's modules and atlases are written, or an error is
// returned naming the failing job.
func (imp *Importer) Run(ctx context.Context, defsDir string, jobs ...Job) error {
	overall := time.Now()
	log := imp.logger.With(zap.String("run", uuid.NewString()))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := imp.runJob(log, defsDir, job); err != nil {
			return fmt.Errorf("%s: %w", job.Name(), err)
		}
	}
	log.Info("extraction complete",
		zap.Int("jobs", len(jobs)),
		zap.Duration("elapsed", time.Since(overall).Round(time.Millisecond)),
	)
	return nil
}

func (imp *Importer) runJob(log *zap.Logger, defsDir string, job Job) error {
	log = log.With(zap.String("job", job.Name()))

	t0 := time.Now()
	out, err := job.Build(defsDir)
	if err != nil {
		return err
	}
	log.Info("built",
		zap.Int("records", out.Records()),
		zap.Duration("elapsed", time.Since(t0).Round(time.Millisecond)),
	)

	for _, s := range out.Sheets {
		for _, name := range s.Sheet.Missing {
			log.Warn("icon not found", zap.String("icon", name), zap.String("sheet", s.File))
		}
		if len(s.Sheet.Offsets) == 0 {
			log.Warn("no icons found, atlas not written", zap.String("sheet", s.File))
			continue
		}
		path := filepath.Join(imp.out.PageDir, s.File)
		if err := s.Sheet.WritePNG(path); err != nil {
			return err
		}
		log.Info("wrote atlas",
			zap.String("path", path),
			zap.Int("icons", len(s.Sheet.Offsets)),
			zap.Int("cols", s.Sheet.Cols),
			zap.Int("rows", s.Sheet.Rows),
		)
	}

	scriptDir := imp.out.PageDir
	if out.Scripts == DocsScripts {
		scriptDir = imp.out.DocsDir
	}
	for _, m := range out.Modules {
		t1 := time.Now()
		paths, err := emit.Write(m, imp.out.DataDir, scriptDir)
		if err != nil {
			return err
		}
		log.Info("wrote module",
			zap.Strings("paths", paths),
			zap.Duration("elapsed", time.Since(t1).Round(time.Millisecond)),
		)
	}
	return nil
}
