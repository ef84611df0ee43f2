package menu

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File is the YAML representation of a menu.
type File struct {
	Sections []SectionSpec `yaml:"sections"`
}

// SectionSpec is one section in a menu file.
type SectionSpec struct {
	Name  string     `yaml:"name"`
	Items []ItemSpec `yaml:"items"`
}

// ItemSpec is one dish in a menu file.
type ItemSpec struct {
	Name        string           `yaml:"name"`
	Price       int              `yaml:"price"`
	PrepTime    int              `yaml:"prep_time"`
	Ingredients []IngredientSpec `yaml:"ingredients"`
}

// IngredientSpec is one ingredient in a menu file.
type IngredientSpec struct {
	Name     string `yaml:"name"`
	Calories int    `yaml:"calories"`
}

// Load reads a menu from path. Files ending in .yaml or .yml are parsed as
// YAML; anything else is treated as a ';'-delimited table.
func Load(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu: %w", err)
	}
	var m *Menu
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = ParseYAML(data)
	default:
		m, err = ParseDelimited(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded menu %s: %d sections, %d dishes", path, len(m.Sections()), m.Len())
	return m, nil
}

// ParseYAML builds a Menu from YAML. Unknown keys are rejected.
func ParseYAML(data []byte) (*Menu, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing menu: %w", err)
	}
	return f.Build()
}

// Build validates the file contents and assembles the Menu.
func (f *File) Build() (*Menu, error) {
	m := New()
	for _, ss := range f.Sections {
		if _, err := m.AddSection(ss.Name); err != nil {
			return nil, err
		}
		for _, is := range ss.Items {
			ings := make([]Ingredient, 0, len(is.Ingredients))
			for _, ig := range is.Ingredients {
				ing, err := NewIngredient(ig.Name, ig.Calories)
				if err != nil {
					return nil, err
				}
				ings = append(ings, ing)
			}
			it, err := NewItem(is.Name, is.Price, is.PrepTime, ings...)
			if err != nil {
				return nil, err
			}
			if err := m.AddItem(ss.Name, it); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// ParseDelimited reads one dish per row:
//
//	section;dish;price;prep_time;ingredient:calories,ingredient:calories
//
// A header row starting with "section" and '#' comment rows are skipped.
func ParseDelimited(r io.Reader) (*Menu, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	m := New()
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing menu: %w", err)
		}
		line++
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "section") {
			continue
		}
		if len(rec) < 4 {
			return nil, fmt.Errorf("parsing menu row %d: want at least 4 fields, got %d", line, len(rec))
		}
		price, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("parsing menu row %d price: %w", line, err)
		}
		prep, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("parsing menu row %d prep_time: %w", line, err)
		}
		var ings []Ingredient
		if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
			ings, err = parseIngredients(rec[4])
			if err != nil {
				return nil, fmt.Errorf("parsing menu row %d: %w", line, err)
			}
		}
		it, err := NewItem(strings.TrimSpace(rec[1]), price, prep, ings...)
		if err != nil {
			return nil, fmt.Errorf("menu row %d: %w", line, err)
		}
		if err := m.AddItem(strings.TrimSpace(rec[0]), it); err != nil {
			return nil, fmt.Errorf("menu row %d: %w", line, err)
		}
	}
	return m, nil
}

func parseIngredients(field string) ([]Ingredient, error) {
	parts := strings.Split(field, ",")
	out := make([]Ingredient, 0, len(parts))
	for _, p := range parts {
		name, cal, found := strings.Cut(strings.TrimSpace(p), ":")
		calories := 0
		if found {
			v, err := strconv.Atoi(strings.TrimSpace(cal))
			if err != nil {
				return nil, fmt.Errorf("ingredient %q calories: %w", name, err)
			}
			calories = v
		}
		ing, err := NewIngredient(strings.TrimSpace(name), calories)
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, nil
}
