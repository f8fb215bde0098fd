package main

import (
	"path/filepath"
	"strings"

	"github.com/petrolith/wellmerge/internal/merge"
	"github.com/petrolith/wellmerge/internal/snapshot"
	"github.com/petrolith/wellmerge/pkg/las"
)

// readRecord loads a well record from a LAS file or a .snap snapshot,
// selected by extension.
func readRecord(path string) (*merge.WellRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".snap") {
		return snapshot.Load(path)
	}
	return las.ReadFile(path)
}

// writeOptions maps config merge settings onto LAS writer options.
func writeOptions(nullValue float64, depthUnit string) las.WriteOptions {
	return las.WriteOptions{Null: nullValue, DepthUnit: depthUnit}
}
