package las

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/petrolith/wellmerge/internal/merge"
)

// Reader parses a LAS 2.0 document into a merge.WellRecord.
type Reader struct {
	src     io.Reader
	lineNum int

	wellName  string
	null      float64
	headStep  float64
	curves    []curveInfo
	depths    []float64
	columns   [][]float64
	dataSeen  bool
	curvesSet bool
}

// NewReader returns a Reader consuming src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, null: DefaultNull}
}

// ReadFile parses the LAS file at path. The returned record's Source is the
// file path; if the file's ~Well section carries no well name, the file's
// base name (without extension) is used instead.
func ReadFile(path string) (*merge.WellRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rec.Source = path
	if rec.Name == "" {
		base := filepath.Base(path)
		rec.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return rec, nil
}

// Read consumes the document and builds the well record.
func (r *Reader) Read() (*merge.WellRecord, error) {
	scanner := bufio.NewScanner(r.src)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	section := byte(0)
	for scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "~") {
			if len(line) < 2 {
				return nil, r.errf("empty section marker")
			}
			section = line[1] &^ 0x20 // uppercase ASCII
			continue
		}

		switch section {
		case 'V':
			if err := r.parseVersionLine(line); err != nil {
				return nil, err
			}
		case 'W':
			if err := r.parseWellLine(line); err != nil {
				return nil, err
			}
		case 'C':
			if err := r.parseCurveLine(line); err != nil {
				return nil, err
			}
		case 'A':
			if err := r.parseDataLine(line); err != nil {
				return nil, err
			}
		case 'P', 'O':
			// Parameter and Other sections are informational; skipped.
		case 0:
			return nil, r.errf("data before any section marker")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return r.finish()
}

func (r *Reader) errf(format string, args ...interface{}) error {
	return &ParseError{Line: r.lineNum, Err: fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidFormat}, args...)...)}
}

// splitHeaderLine decomposes " MNEM.UNIT  value : description" into its parts.
func splitHeaderLine(line string) (mnem, unit, value, desc string, ok bool) {
	dot := strings.Index(line, ".")
	if dot < 0 {
		return "", "", "", "", false
	}
	mnem = strings.TrimSpace(line[:dot])
	rest := line[dot+1:]

	// Unit runs from the dot to the first whitespace.
	unitEnd := strings.IndexFunc(rest, func(c rune) bool { return c == ' ' || c == '\t' })
	if unitEnd < 0 {
		unitEnd = len(rest)
	}
	unit = rest[:unitEnd]
	rest = rest[unitEnd:]

	// Description follows the last colon; the value sits in between.
	colon := strings.LastIndex(rest, ":")
	if colon < 0 {
		value = strings.TrimSpace(rest)
	} else {
		value = strings.TrimSpace(rest[:colon])
		desc = strings.TrimSpace(rest[colon+1:])
	}
	return mnem, unit, value, desc, true
}

func (r *Reader) parseVersionLine(line string) error {
	mnem, _, value, _, ok := splitHeaderLine(line)
	if !ok {
		return r.errf("malformed version line %q", line)
	}
	if mnem == "WRAP" && strings.EqualFold(value, "YES") {
		return ErrWrappedFile
	}
	return nil
}

func (r *Reader) parseWellLine(line string) error {
	mnem, _, value, desc, ok := splitHeaderLine(line)
	if !ok {
		return r.errf("malformed well line %q", line)
	}
	switch mnem {
	case "STRT", "STOP":
		// The data section is authoritative for the depth range; header
		// values are informational here.
	case "STEP":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return r.errf("bad STEP value %q", value)
		}
		r.headStep = v
	case "NULL":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return r.errf("bad NULL value %q", value)
		}
		r.null = v
	case "WELL":
		// LAS 1.2 put the well name in the description field; 2.0 puts it in
		// the value field. Accept either.
		if value != "" {
			r.wellName = value
		} else {
			r.wellName = desc
		}
	}
	return nil
}

func (r *Reader) parseCurveLine(line string) error {
	mnem, unit, _, desc, ok := splitHeaderLine(line)
	if !ok {
		return r.errf("malformed curve line %q", line)
	}
	r.curves = append(r.curves, curveInfo{mnemonic: mnem, unit: unit, description: desc})
	r.curvesSet = true
	return nil
}

func (r *Reader) parseDataLine(line string) error {
	if !r.curvesSet {
		return r.errf("data section before curve section")
	}
	fields := strings.Fields(line)
	if len(fields) != len(r.curves) {
		return r.errf("row has %d columns, curve section declares %d", len(fields), len(r.curves))
	}
	if r.columns == nil {
		r.columns = make([][]float64, len(r.curves)-1)
	}

	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return r.errf("non-numeric sample %q", f)
		}
		if i == 0 {
			r.depths = append(r.depths, v)
			continue
		}
		if math.Abs(v-r.null) < nullTolerance {
			v = math.NaN()
		}
		r.columns[i-1] = append(r.columns[i-1], v)
	}
	r.dataSeen = true
	return nil
}

func (r *Reader) finish() (*merge.WellRecord, error) {
	if !r.dataSeen {
		return nil, fmt.Errorf("%w: no data section", ErrInvalidFormat)
	}
	if len(r.curves) < 2 {
		return nil, fmt.Errorf("%w: fewer than two curves declared", ErrInvalidFormat)
	}

	step := r.headStep
	if step <= 0 {
		if len(r.depths) < 2 {
			return nil, fmt.Errorf("%w: cannot determine depth step", ErrInvalidFormat)
		}
		step = r.depths[1] - r.depths[0]
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: non-increasing depth step %v", ErrInvalidFormat, step)
	}

	rec := merge.NewWellRecord(r.wellName)
	start := r.depths[0]
	for i, info := range r.curves[1:] {
		c, err := merge.NewCurveFromSamples(info.mnemonic, info.unit, start, step, r.columns[i])
		if err != nil {
			return nil, err
		}
		c.Description = info.description
		if err := rec.AddCurve(c); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
