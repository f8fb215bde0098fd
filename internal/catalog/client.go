// Package catalog records merge runs and per-curve quality summaries in a
// shared Postgres database, so a team can trace which source files produced a
// merged well and how much overlap the merge reconciled.
package catalog

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/petrolith/wellmerge/internal/log"
	"github.com/petrolith/wellmerge/internal/merge"
	"github.com/petrolith/wellmerge/internal/petro"
)

// Client holds the connection to the catalog database
type Client struct {
	dsn    string
	DB     *gorm.DB // Exported so it can be accessed from other packages
	logger *zap.SugaredLogger
}

// NewClient creates a new catalog client
func NewClient(dsn string, logger *zap.SugaredLogger) *Client {
	return &Client{
		dsn:    dsn,
		logger: logger,
	}
}

// Connect connects to the catalog database and migrates the schema
func (c *Client) Connect() error {
	// Create a logger for gorm
	dbLogger := logger.New(
		zap.NewStdLog(log.GetZapLogger()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var err error
	log.Info("connecting to merge catalog...")
	c.DB, err = gorm.Open(postgres.Open(c.dsn), &gorm.Config{Logger: dbLogger})
	if err != nil {
		log.Warn("warning: unable to create a catalog connection:", err)
		return err
	}

	if err := c.DB.AutoMigrate(&MergeRun{}, &CurveQC{}); err != nil {
		return fmt.Errorf("migrating catalog schema: %w", err)
	}
	log.Info("merge catalog connection successful")

	return nil
}

// RecordMerge inserts a merge run with one CurveQC row per merged curve and
// returns the run ID.
func (c *Client) RecordMerge(rec *merge.WellRecord) (string, error) {
	if c.DB == nil {
		return "", fmt.Errorf("catalog: not connected")
	}

	run := MergeRun{
		RunID:             uuid.New().String(),
		WellName:          rec.Name,
		SourceFiles:       strings.Join(rec.Metadata.OriginalFiles, "\n"),
		SourceCount:       len(rec.Metadata.OriginalFiles),
		CurveCount:        rec.NumCurves(),
		OverlapsProcessed: rec.Metadata.OverlapsProcessed,
		MergedAt:          time.Now().UTC(),
	}

	qcRows := make([]CurveQC, 0, rec.NumCurves())
	for _, curve := range rec.Curves() {
		s := petro.CurveStats(curve)
		qcRows = append(qcRows, CurveQC{
			RunID:       run.RunID,
			Mnemonic:    curve.Mnemonic,
			Unit:        curve.Unit,
			DepthStart:  curve.Start,
			DepthStop:   curve.Stop,
			DepthStep:   curve.Step,
			SampleCount: curve.NumSamples(),
			ValidCount:  s.Count,
			MinValue:    zeroIfNaN(s.Min),
			MaxValue:    zeroIfNaN(s.Max),
			MeanValue:   zeroIfNaN(s.Mean),
			StdDev:      zeroIfNaN(s.StdDev),
		})
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return err
		}
		if len(qcRows) > 0 {
			if err := tx.Create(&qcRows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("recording merge run: %w", err)
	}

	c.logger.Infow("recorded merge run",
		"run_id", run.RunID, "well", run.WellName,
		"curves", run.CurveCount, "overlaps", run.OverlapsProcessed)
	return run.RunID, nil
}

// RecentRuns returns the most recent merge runs for a well, newest first. An
// empty wellName returns runs for all wells.
func (c *Client) RecentRuns(wellName string, limit int) ([]MergeRun, error) {
	if c.DB == nil {
		return nil, fmt.Errorf("catalog: not connected")
	}

	q := c.DB.Order("merged_at DESC").Limit(limit)
	if wellName != "" {
		q = q.Where("well_name = ?", wellName)
	}

	var runs []MergeRun
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("querying merge runs: %w", err)
	}
	return runs, nil
}

// CurvesForRun returns the per-curve QC rows of one run.
func (c *Client) CurvesForRun(runID string) ([]CurveQC, error) {
	if c.DB == nil {
		return nil, fmt.Errorf("catalog: not connected")
	}

	var rows []CurveQC
	if err := c.DB.Where("run_id = ?", runID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("querying curve QC: %w", err)
	}
	return rows, nil
}

// zeroIfNaN maps NaN statistics (all-null curves) to zero for storage; SQL
// numeric columns have no NaN.
func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
