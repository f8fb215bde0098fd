package catalog

import (
	"time"
)

// MergeRun is one invocation of the well merge orchestrator recorded in the
// team catalog.
type MergeRun struct {
	RunID             string    `gorm:"primaryKey;column:run_id"`
	WellName          string    `gorm:"column:well_name;not null;index"`
	SourceFiles       string    `gorm:"column:source_files;not null"` // newline-separated, input order
	SourceCount       int       `gorm:"column:source_count"`
	CurveCount        int       `gorm:"column:curve_count"`
	OverlapsProcessed int       `gorm:"column:overlaps_processed"`
	MergedAt          time.Time `gorm:"column:merged_at;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for MergeRun
func (MergeRun) TableName() string {
	return "merge_runs"
}

// CurveQC is a per-curve quality summary attached to a merge run.
type CurveQC struct {
	ID          int     `gorm:"primaryKey;autoIncrement;column:id"`
	RunID       string  `gorm:"column:run_id;not null;index"`
	Mnemonic    string  `gorm:"column:mnemonic;not null"`
	Unit        string  `gorm:"column:unit"`
	DepthStart  float64 `gorm:"column:depth_start"`
	DepthStop   float64 `gorm:"column:depth_stop"`
	DepthStep   float64 `gorm:"column:depth_step"`
	SampleCount int     `gorm:"column:sample_count"`
	ValidCount  int     `gorm:"column:valid_count"`
	MinValue    float64 `gorm:"column:min_value"`
	MaxValue    float64 `gorm:"column:max_value"`
	MeanValue   float64 `gorm:"column:mean_value"`
	StdDev      float64 `gorm:"column:std_dev"`
}

// TableName specifies the table name for CurveQC
func (CurveQC) TableName() string {
	return "curve_qc"
}
