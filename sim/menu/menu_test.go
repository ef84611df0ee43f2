package menu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurant-sim/restaurant-sim/sim/internal/testutil"
)

func mustItem(t *testing.T, name string, price int, ings ...Ingredient) *Item {
	t.Helper()
	it, err := NewItem(name, price, 1, ings...)
	require.NoError(t, err)
	return it
}

func TestKey_NormalizesSpellings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tomato Soup", "tomato_soup"},
		{"tomato-soup", "tomato_soup"},
		{"TomatoSoup", "tomato_soup"},
		{"  tomato soup ", "tomato_soup"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.in))
		})
	}
}

func TestKey_FoldsNonASCIICase(t *testing.T) {
	for _, name := range []string{"Żurek", "żurek", "ŻUREK"} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "żurek", Key(name))
		})
	}
}

func TestMenu_DiacriticNames_LookupAndUniqueness(t *testing.T) {
	// GIVEN a menu with a Polish dish name
	m := New()
	require.NoError(t, m.AddItem("Soups", mustItem(t, "Żurek", 1500)))

	// WHEN it is looked up in other cases
	for _, name := range []string{"żurek", "ŻUREK"} {
		it, err := m.Item(name)
		require.NoError(t, err, name)
		assert.Equal(t, "Żurek", it.Name)
	}

	// THEN a differently cased duplicate is rejected
	err := m.AddItem("Mains", mustItem(t, "żurek", 1400))
	assert.ErrorIs(t, err, ErrDishAlreadyExists)
	assert.Equal(t, 1, m.Len())
}

func TestNewItem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		dish    string
		price   int
		prep    int
		wantErr error
	}{
		{"empty name", " ", 100, 1, ErrEmptyName},
		{"negative price", "Soup", -1, 1, ErrNegativePrice},
		{"negative prep", "Soup", 100, -5, ErrNegativePrepTime},
		{"valid", "Soup", 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(tt.dish, tt.price, tt.prep)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewIngredient_NegativeCalories_Rejected(t *testing.T) {
	_, err := NewIngredient("salt", -3)
	assert.ErrorIs(t, err, ErrNegativeCalories)
}

func TestItem_TotalCalories_SumsIngredients(t *testing.T) {
	it := mustItem(t, "Pierogi", 2450,
		Ingredient{Name: "dough", Calories: 300},
		Ingredient{Name: "potato", Calories: 200})
	assert.Equal(t, 500, it.TotalCalories())
}

func TestItem_RemoveIngredient(t *testing.T) {
	// GIVEN an item with two ingredients
	it := mustItem(t, "Pierogi", 2450,
		Ingredient{Name: "dough", Calories: 300},
		Ingredient{Name: "potato", Calories: 200})

	// WHEN one is removed
	require.NoError(t, it.RemoveIngredient("dough"))

	// THEN only the other remains and calories follow
	assert.Len(t, it.Ingredients, 1)
	assert.Equal(t, 200, it.TotalCalories())

	// AND removing an unknown ingredient fails
	assert.ErrorIs(t, it.RemoveIngredient("onion"), ErrIngredientDoesNotExist)

	// AND removing from an empty list fails
	require.NoError(t, it.RemoveIngredient("potato"))
	assert.ErrorIs(t, it.RemoveIngredient("potato"), ErrRemovingFromEmptyList)
}

func TestMenu_AddItem_DuplicateAcrossSections_Rejected(t *testing.T) {
	m := New()
	require.NoError(t, m.AddItem("Mains", mustItem(t, "Pierogi", 2450)))

	err := m.AddItem("Specials", mustItem(t, "pierogi", 2000))

	assert.ErrorIs(t, err, ErrDishAlreadyExists)
	assert.Equal(t, 1, m.Len())
	assert.Len(t, m.Sections(), 1, "failed insert must not leave an empty section behind")
}

func TestMenu_Item_LookupIsSpellingInsensitive(t *testing.T) {
	m := New()
	require.NoError(t, m.AddItem("Soups", mustItem(t, "Tomato Soup", 1200)))

	it, err := m.Item("tomato-soup")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Soup", it.Name)

	_, err = m.Item("borscht")
	assert.ErrorIs(t, err, ErrDishDoesNotExist)
}

func TestMenu_RemoveItem(t *testing.T) {
	// GIVEN a section with two dishes
	m := New()
	require.NoError(t, m.AddItem("Mains", mustItem(t, "Pierogi", 2450)))
	require.NoError(t, m.AddItem("Mains", mustItem(t, "Schnitzel", 3900)))

	// WHEN the first is removed
	require.NoError(t, m.RemoveItem("Pierogi"))

	// THEN lookups and section order reflect the removal
	_, err := m.Item("Pierogi")
	assert.ErrorIs(t, err, ErrDishDoesNotExist)
	s, err := m.Section("mains")
	require.NoError(t, err)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Schnitzel", s.Items()[0].Name)

	// AND the remaining dish can still be removed by name
	require.NoError(t, m.RemoveItem("schnitzel"))
	assert.Equal(t, 0, m.Len())
}

func TestMenu_Section_Unknown(t *testing.T) {
	_, err := New().Section("Drinks")
	assert.True(t, errors.Is(err, ErrMenuSectionDoesNotExist))
}

func TestParseYAML_SampleMenu(t *testing.T) {
	m, err := ParseYAML([]byte(testutil.SampleMenuYAML))
	require.NoError(t, err)

	assert.Equal(t, 4, m.Len())
	require.Len(t, m.Sections(), 3)
	assert.Equal(t, "Soups", m.Sections()[0].Name)
	assert.Equal(t, "Desserts", m.Sections()[2].Name)

	soup, err := m.Item("Tomato Soup")
	require.NoError(t, err)
	assert.Equal(t, 1200, soup.Price)
	assert.Equal(t, 200, soup.TotalCalories())

	prep := m.PrepTimes()
	assert.Equal(t, 20, prep["Schnitzel"])
	assert.Equal(t, 2, prep["Cheesecake"])
}

func TestParseYAML_UnknownField_Rejected(t *testing.T) {
	_, err := ParseYAML([]byte("sections:\n  - name: Soups\n    itemz: []\n"))
	assert.Error(t, err)
}

func TestParseDelimited_MatchesYAML(t *testing.T) {
	fromYAML, err := ParseYAML([]byte(testutil.SampleMenuYAML))
	require.NoError(t, err)
	fromCSV, err := ParseDelimited(strings.NewReader(testutil.SampleMenuDelimited))
	require.NoError(t, err)

	require.Equal(t, fromYAML.Len(), fromCSV.Len())
	for _, want := range fromYAML.Items() {
		got, err := fromCSV.Item(want.Name)
		require.NoError(t, err)
		assert.Equal(t, want.Price, got.Price, want.Name)
		assert.Equal(t, want.PrepTime, got.PrepTime, want.Name)
		assert.Equal(t, want.TotalCalories(), got.TotalCalories(), want.Name)
	}
}

func TestParseDelimited_BadRows(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"too few fields", "Soups;Tomato Soup;1200\n", nil},
		{"bad price", "Soups;Tomato Soup;abc;5\n", nil},
		{"negative price", "Soups;Tomato Soup;-1;5\n", ErrNegativePrice},
		{"negative calories", "Soups;Tomato Soup;1;5;salt:-2\n", ErrNegativeCalories},
		{"duplicate dish", "Soups;Soup;1;5\nMains;soup;1;5\n", ErrDishAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDelimited(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	yamlPath := testutil.WriteTempFile(t, "menu.yaml", testutil.SampleMenuYAML)
	csvPath := testutil.WriteTempFile(t, "menu.csv", testutil.SampleMenuDelimited)

	for _, path := range []string{yamlPath, csvPath} {
		m, err := Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, 4, m.Len(), path)
	}

	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}
