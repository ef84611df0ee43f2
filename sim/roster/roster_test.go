package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurant-sim/restaurant-sim/sim/internal/testutil"
)

func TestParseDelimited_SortsByID(t *testing.T) {
	// GIVEN rows out of id order with a header and a comment
	input := "id;seats\n3;6\n# window tables\n1;2\n2;4\n"

	// WHEN parsed
	entries, err := ParseDelimited(strings.NewReader(input))

	// THEN entries come back ascending by id
	require.NoError(t, err)
	assert.Equal(t, []Entry{{1, 2}, {2, 4}, {3, 6}}, entries)
}

func TestParseYAML_Valid(t *testing.T) {
	entries, err := ParseYAML([]byte("tables:\n  - {id: 2, seats: 4}\n  - {id: 1, seats: 2}\n"))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{1, 2}, {2, 4}}, entries)
}

func TestParseYAML_UnknownField_Rejected(t *testing.T) {
	_, err := ParseYAML([]byte("tables:\n  - {id: 1, chairs: 2}\n"))
	assert.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{"empty", nil, ErrEmptyRoster},
		{"duplicate id", []Entry{{1, 2}, {1, 4}}, ErrDuplicateTableID},
		{"zero seats", []Entry{{1, 0}}, ErrInvalidSeats},
		{"negative seats", []Entry{{1, -2}}, ErrInvalidSeats},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.entries)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseDelimited_BadRow(t *testing.T) {
	_, err := ParseDelimited(strings.NewReader("1;two\n"))
	assert.Error(t, err)

	_, err = ParseDelimited(strings.NewReader("1;2;3\n"))
	assert.Error(t, err, "rows must have exactly two fields")
}

func TestLoad_BothFormats(t *testing.T) {
	yamlPath := testutil.WriteTempFile(t, "tables.yml", "tables:\n  - {id: 1, seats: 2}\n")
	csvPath := testutil.WriteTempFile(t, "tables.csv", "1;2\n")

	for _, path := range []string{yamlPath, csvPath} {
		entries, err := Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, []Entry{{1, 2}}, entries, path)
	}
}
