// Package menu holds the restaurant's static catalog: sections, items,
// ingredients and per-item preparation time. A Menu is built once at
// startup and read-only for the rest of the simulation.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

var (
	ErrDishAlreadyExists       = errors.New("dish already exists")
	ErrDishDoesNotExist        = errors.New("dish does not exist")
	ErrEmptyName               = errors.New("name cannot be empty")
	ErrNegativePrice           = errors.New("price cannot be negative")
	ErrNegativeCalories        = errors.New("calories cannot be negative")
	ErrNegativePrepTime        = errors.New("preparation time cannot be negative")
	ErrIngredientDoesNotExist  = errors.New("ingredient does not exist")
	ErrMenuSectionDoesNotExist = errors.New("menu section does not exist")
	ErrRemovingFromEmptyList   = errors.New("cannot remove from empty list")
)

// Key normalizes a dish or section name into its lookup key.
// "Pierogi Ruskie", "pierogi-ruskie" and "PierogiRuskie" all map to "pierogi_ruskie".
// strcase only folds ASCII, so the result is lowered again for names like "ŻUREK".
func Key(name string) string {
	return strings.ToLower(strcase.ToSnake(strings.TrimSpace(name)))
}

// Ingredient is a named component of a dish with its calorie contribution.
type Ingredient struct {
	Name     string
	Calories int
}

// NewIngredient validates and builds an Ingredient.
func NewIngredient(name string, calories int) (Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return Ingredient{}, ErrEmptyName
	}
	if calories < 0 {
		return Ingredient{}, fmt.Errorf("ingredient %q: %w", name, ErrNegativeCalories)
	}
	return Ingredient{Name: name, Calories: calories}, nil
}

// Item is a single dish on the menu. Price is in minor currency units.
type Item struct {
	Name        string
	Price       int
	PrepTime    int // ticks; informational only
	Ingredients []Ingredient
}

// NewItem validates and builds an Item.
func NewItem(name string, price, prepTime int, ingredients ...Ingredient) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, fmt.Errorf("dish %q: %w", name, ErrNegativePrice)
	}
	if prepTime < 0 {
		return nil, fmt.Errorf("dish %q: %w", name, ErrNegativePrepTime)
	}
	return &Item{Name: name, Price: price, PrepTime: prepTime, Ingredients: ingredients}, nil
}

// Key returns the item's lookup key.
func (it *Item) Key() string {
	return Key(it.Name)
}

// TotalCalories sums the calories of every ingredient.
func (it *Item) TotalCalories() int {
	total := 0
	for _, ing := range it.Ingredients {
		total += ing.Calories
	}
	return total
}

// AddIngredient appends an ingredient to the item.
func (it *Item) AddIngredient(ing Ingredient) {
	it.Ingredients = append(it.Ingredients, ing)
}

// RemoveIngredient drops the first ingredient with the given name.
func (it *Item) RemoveIngredient(name string) error {
	if len(it.Ingredients) == 0 {
		return ErrRemovingFromEmptyList
	}
	for i, ing := range it.Ingredients {
		if ing.Name == name {
			it.Ingredients = append(it.Ingredients[:i], it.Ingredients[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q in %q: %w", name, it.Name, ErrIngredientDoesNotExist)
}

func (it *Item) String() string {
	return fmt.Sprintf("Item: (Name: %s, Price: %d, Calories: %d)", it.Name, it.Price, it.TotalCalories())
}

// Section groups items under a heading, preserving insertion order.
type Section struct {
	Name  string
	items []*Item
	index map[string]int
}

// NewSection returns an empty named section.
func NewSection(name string) (*Section, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Section{Name: name, index: make(map[string]int)}, nil
}

// Items returns the section's items in insertion order.
// The returned slice MUST NOT be modified.
func (s *Section) Items() []*Item {
	return s.items
}

// Add appends an item. Names are unique within a section by Key.
func (s *Section) Add(it *Item) error {
	k := it.Key()
	if _, ok := s.index[k]; ok {
		return fmt.Errorf("%q in section %q: %w", it.Name, s.Name, ErrDishAlreadyExists)
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, it)
	return nil
}

// Remove deletes the item with the given name.
func (s *Section) Remove(name string) error {
	if len(s.items) == 0 {
		return ErrRemovingFromEmptyList
	}
	i, ok := s.index[Key(name)]
	if !ok {
		return fmt.Errorf("%q in section %q: %w", name, s.Name, ErrDishDoesNotExist)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.reindex()
	return nil
}

func (s *Section) reindex() {
	s.index = make(map[string]int, len(s.items))
	for i, it := range s.items {
		s.index[it.Key()] = i
	}
}

// Menu is the ordered list of sections. Dish names are unique across the
// whole menu.
type Menu struct {
	sections []*Section
	dishes   map[string]*Item
}

// New returns an empty menu.
func New() *Menu {
	return &Menu{dishes: make(map[string]*Item)}
}

// Sections returns the sections in insertion order.
func (m *Menu) Sections() []*Section {
	return m.sections
}

// Section looks up a section by name.
func (m *Menu) Section(name string) (*Section, error) {
	k := Key(name)
	for _, s := range m.sections {
		if Key(s.Name) == k {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrMenuSectionDoesNotExist)
}

// AddSection appends a section, or returns the existing one with that name.
func (m *Menu) AddSection(name string) (*Section, error) {
	if s, err := m.Section(name); err == nil {
		return s, nil
	}
	s, err := NewSection(name)
	if err != nil {
		return nil, err
	}
	m.sections = append(m.sections, s)
	return s, nil
}

// AddItem places an item in the named section, creating the section on demand.
func (m *Menu) AddItem(section string, it *Item) error {
	if _, ok := m.dishes[it.Key()]; ok {
		return fmt.Errorf("%q: %w", it.Name, ErrDishAlreadyExists)
	}
	s, err := m.AddSection(section)
	if err != nil {
		return err
	}
	if err := s.Add(it); err != nil {
		return err
	}
	m.dishes[it.Key()] = it
	return nil
}

// RemoveItem deletes a dish from whichever section holds it.
func (m *Menu) RemoveItem(name string) error {
	k := Key(name)
	if _, ok := m.dishes[k]; !ok {
		return fmt.Errorf("%q: %w", name, ErrDishDoesNotExist)
	}
	for _, s := range m.sections {
		if _, ok := s.index[k]; ok {
			if err := s.Remove(name); err != nil {
				return err
			}
			break
		}
	}
	delete(m.dishes, k)
	return nil
}

// Item looks up a dish by name.
func (m *Menu) Item(name string) (*Item, error) {
	it, ok := m.dishes[Key(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrDishDoesNotExist)
	}
	return it, nil
}

// Items returns every dish, section by section.
func (m *Menu) Items() []*Item {
	out := make([]*Item, 0, len(m.dishes))
	for _, s := range m.sections {
		out = append(out, s.items...)
	}
	return out
}

// Len returns the number of dishes.
func (m *Menu) Len() int {
	return len(m.dishes)
}

// PrepTimes returns the dish name -> preparation time lookup the kitchen
// is configured with.
func (m *Menu) PrepTimes() map[string]int {
	out := make(map[string]int, len(m.dishes))
	for _, it := range m.dishes {
		out[it.Name] = it.PrepTime
	}
	return out
}
