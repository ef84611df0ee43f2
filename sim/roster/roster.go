// Package roster supplies the initial set of tables (id, seat count) the
// restaurant is populated with at startup.
package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateTableID = errors.New("duplicate table id")
	ErrInvalidSeats     = errors.New("seat count must be positive")
	ErrEmptyRoster      = errors.New("roster has no tables")
)

// Entry describes one physical table.
type Entry struct {
	ID    uint32 `yaml:"id"`
	Seats int    `yaml:"seats"`
}

// File is the YAML representation of a roster.
type File struct {
	Tables []Entry `yaml:"tables"`
}

// Load reads a roster from path. Files ending in .yaml or .yml are parsed as
// YAML; anything else is treated as ';'-delimited "id;seats" rows.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = ParseYAML(data)
	default:
		entries, err = ParseDelimited(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded roster %s: %d tables", path, len(entries))
	return entries, nil
}

// ParseYAML decodes and validates a YAML roster. Unknown keys are rejected.
func ParseYAML(data []byte) ([]Entry, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	return Validate(f.Tables)
}

// ParseDelimited reads "id;seats" rows. A header row starting with "id" and
// '#' comment rows are skipped.
func ParseDelimited(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var entries []Entry
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing roster: %w", err)
		}
		line++
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "id") {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimSpace(rec[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing roster row %d id: %w", line, err)
		}
		seats, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("parsing roster row %d seats: %w", line, err)
		}
		entries = append(entries, Entry{ID: uint32(id), Seats: seats})
	}
	return Validate(entries)
}

// Validate checks ids are unique and seat counts positive, and returns the
// entries sorted by ascending id.
func Validate(entries []Entry) ([]Entry, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRoster
	}
	seen := make(map[uint32]bool, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			return nil, fmt.Errorf("table %d: %w", e.ID, ErrDuplicateTableID)
		}
		seen[e.ID] = true
		if e.Seats <= 0 {
			return nil, fmt.Errorf("table %d has %d seats: %w", e.ID, e.Seats, ErrInvalidSeats)
		}
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
