// Package snapshot persists merged well records in a compact msgpack format.
// Snapshots are a local cache beside the LAS export: loading one skips
// re-parsing and re-merging the source files.
package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/petrolith/wellmerge/internal/merge"
)

// formatVersion guards against decoding snapshots written by incompatible
// releases.
const formatVersion = 1

type curveSnapshot struct {
	Mnemonic    string    `msgpack:"mnemonic"`
	Unit        string    `msgpack:"unit"`
	Description string    `msgpack:"description"`
	Start       float64   `msgpack:"start"`
	Stop        float64   `msgpack:"stop"`
	Step        float64   `msgpack:"step"`
	Values      []float64 `msgpack:"values"`
}

type wellSnapshot struct {
	Version           int             `msgpack:"version"`
	Name              string          `msgpack:"name"`
	Source            string          `msgpack:"source"`
	OriginalFiles     []string        `msgpack:"original_files"`
	OverlapsProcessed int             `msgpack:"overlaps_processed"`
	Curves            []curveSnapshot `msgpack:"curves"`
}

// Encode writes rec to w.
func Encode(w io.Writer, rec *merge.WellRecord) error {
	return encodeWithVersion(w, rec, formatVersion)
}

func encodeWithVersion(w io.Writer, rec *merge.WellRecord, version int) error {
	snap := wellSnapshot{
		Version:           version,
		Name:              rec.Name,
		Source:            rec.Source,
		OriginalFiles:     rec.Metadata.OriginalFiles,
		OverlapsProcessed: rec.Metadata.OverlapsProcessed,
	}
	for _, c := range rec.Curves() {
		snap.Curves = append(snap.Curves, curveSnapshot{
			Mnemonic:    c.Mnemonic,
			Unit:        c.Unit,
			Description: c.Description,
			Start:       c.Start,
			Stop:        c.Stop,
			Step:        c.Step,
			Values:      c.Values(),
		})
	}
	return msgpack.NewEncoder(w).Encode(snap)
}

// Decode reads a well record from r.
func Decode(r io.Reader) (*merge.WellRecord, error) {
	var snap wellSnapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("snapshot: decoding: %w", err)
	}
	if snap.Version != formatVersion {
		return nil, fmt.Errorf("snapshot: unsupported format version %d", snap.Version)
	}

	rec := merge.NewWellRecord(snap.Name)
	rec.Source = snap.Source
	rec.Metadata.OriginalFiles = snap.OriginalFiles
	rec.Metadata.OverlapsProcessed = snap.OverlapsProcessed
	for _, cs := range snap.Curves {
		c, err := merge.NewCurve(cs.Mnemonic, cs.Unit, cs.Start, cs.Stop, cs.Step, cs.Values)
		if err != nil {
			return nil, fmt.Errorf("snapshot: curve %q: %w", cs.Mnemonic, err)
		}
		c.Description = cs.Description
		if err := rec.AddCurve(c); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Save writes rec to the file at path.
func Save(path string, rec *merge.WellRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Encode(f, rec); err != nil {
		return err
	}
	return f.Sync()
}

// Load reads a well record from the file at path.
func Load(path string) (*merge.WellRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
