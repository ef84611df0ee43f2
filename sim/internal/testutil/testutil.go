// Package testutil provides shared test infrastructure for the restaurant
// simulator. It has no dependency on sim/ so both sim/ and its
// sub-packages can import it from their tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleMenuYAML is a three-section menu used across package tests.
// Prices are in minor currency units.
const SampleMenuYAML = `
sections:
  - name: Soups
    items:
      - name: Tomato Soup
        price: 1200
        prep_time: 5
        ingredients:
          - {name: tomato, calories: 80}
          - {name: cream, calories: 120}
  - name: Mains
    items:
      - name: Pierogi
        price: 2450
        prep_time: 15
        ingredients:
          - {name: dough, calories: 300}
          - {name: potato, calories: 200}
      - name: Schnitzel
        price: 3900
        prep_time: 20
        ingredients:
          - {name: pork, calories: 500}
  - name: Desserts
    items:
      - name: Cheesecake
        price: 1500
        prep_time: 2
        ingredients:
          - {name: cheese, calories: 350}
`

// SampleMenuDelimited is SampleMenuYAML in ';'-delimited form.
const SampleMenuDelimited = `section;dish;price;prep_time;ingredients
Soups;Tomato Soup;1200;5;tomato:80,cream:120
Mains;Pierogi;2450;15;dough:300,potato:200
Mains;Schnitzel;3900;20;pork:500
# seasonal items go below
Desserts;Cheesecake;1500;2;cheese:350
`

// WriteTempFile writes content to name inside a per-test temp directory
// and returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file %s: %v", path, err)
	}
	return path
}
