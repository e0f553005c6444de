package model

import (
	"bytes"
	"encoding/json"
	"saapadu/shared/constant"
	gModel "saapadu/shared/model"
	"slices"
)

// MenuEntry is one dish. Members the storefront adds (isVeg, image, ...) ride along in
// Extras and are written back unchanged.
type MenuEntry struct {
	Name        string        `json:"name"`
	Price       gModel.Number `json:"price"`
	Description string        `json:"description,omitempty"`
	Extras      gModel.Extras `json:"-"`

	// bare marks an entry stored as a plain string.
	bare bool
}

func NewMenuEntry(name string, price float64, description string) MenuEntry {
	return MenuEntry{Name: name, Price: gModel.Number(price), Description: description}
}

// Edited returns the entry with its own fields replaced and its extras kept.
func (e MenuEntry) Edited(name string, price float64, description string) MenuEntry {
	e.Name = name
	e.Price = gModel.Number(price)
	e.Description = description

	return e
}

func (e MenuEntry) MarshalJSON() ([]byte, error) {
	if e.bare && e.Price == 0 && e.Description == "" && len(e.Extras) == 0 {
		return json.Marshal(e.Name)
	}

	type alias MenuEntry

	return gModel.EncodeWithExtras(alias(e), e.Extras)
}

func (e *MenuEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err //nolint:wrapcheck
		}

		*e = MenuEntry{Name: name, bare: true}

		return nil
	}

	type alias MenuEntry

	var value alias

	extras, err := gModel.DecodeWithExtras(data, &value)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*e = MenuEntry(value)
	e.Extras = extras

	return nil
}

// Menu holds the ordered entries of the four fixed categories. Anything else stored in a
// menu is kept aside and written back: other categories in Extras, entries that could not
// be read after the readable ones, and a fixed category that is not a list for as long as
// it stays empty here.
type Menu struct {
	Breakfast []MenuEntry   `json:"breakfast"`
	Lunch     []MenuEntry   `json:"lunch"`
	Snacks    []MenuEntry   `json:"snacks"`
	Dinner    []MenuEntry   `json:"dinner"`
	Extras    gModel.Extras `json:"-"`

	unreadable map[string][]json.RawMessage
	malformed  map[string]json.RawMessage
}

// UnmarshalJSON tolerates missing or malformed categories and sets aside entries it cannot read.
func (m *Menu) UnmarshalJSON(data []byte) error {
	*m = Menu{}

	var categories map[string]json.RawMessage
	if err := json.Unmarshal(data, &categories); err != nil || categories == nil {
		return nil //nolint:nilerr
	}

	for name, raw := range categories {
		if !slices.Contains(constant.MenuCategories, name) {
			m.Extras = setAside(m.Extras, name, raw)
		}
	}

	for _, category := range constant.MenuCategories {
		raw, ok := categories[category]
		if !ok || string(bytes.TrimSpace(raw)) == "null" {
			continue
		}

		var rawEntries []json.RawMessage
		if err := json.Unmarshal(raw, &rawEntries); err != nil {
			m.malformed = setAside(m.malformed, category, raw)

			continue
		}

		if len(rawEntries) == 0 {
			continue
		}

		entries := make([]MenuEntry, 0, len(rawEntries))

		for _, rawEntry := range rawEntries {
			var entry MenuEntry
			if err := json.Unmarshal(rawEntry, &entry); err != nil {
				if m.unreadable == nil {
					m.unreadable = make(map[string][]json.RawMessage)
				}

				m.unreadable[category] = append(m.unreadable[category], rawEntry)

				continue
			}

			entries = append(entries, entry)
		}

		*m = m.WithCategory(category, entries)
	}

	return nil
}

// MarshalJSON writes every category, empty ones as [].
func (m Menu) MarshalJSON() ([]byte, error) {
	members := make(map[string]json.RawMessage, len(constant.MenuCategories)+len(m.Extras))
	for name, raw := range m.Extras {
		members[name] = raw
	}

	for _, category := range constant.MenuCategories {
		entries := m.Category(category)

		if raw, ok := m.malformed[category]; ok && len(entries) == 0 {
			members[category] = raw

			continue
		}

		elements := make([]json.RawMessage, 0, len(entries)+len(m.unreadable[category]))

		for _, entry := range entries {
			data, err := json.Marshal(entry)
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			elements = append(elements, data)
		}

		data, err := json.Marshal(append(elements, m.unreadable[category]...))
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		members[category] = data
	}

	return json.Marshal(members) //nolint:wrapcheck
}

func setAside[M ~map[string]json.RawMessage](into M, name string, raw json.RawMessage) M {
	if into == nil {
		into = make(M)
	}

	into[name] = raw

	return into
}

// Category returns the entries of category, nil for an unknown category.
func (m Menu) Category(category string) []MenuEntry {
	switch category {
	case constant.MenuCategoryBreakfast:
		return m.Breakfast
	case constant.MenuCategoryLunch:
		return m.Lunch
	case constant.MenuCategorySnacks:
		return m.Snacks
	case constant.MenuCategoryDinner:
		return m.Dinner
	default:
		return nil
	}
}

// WithCategory returns a copy of the menu with category replaced by entries.
func (m Menu) WithCategory(category string, entries []MenuEntry) Menu {
	switch category {
	case constant.MenuCategoryBreakfast:
		m.Breakfast = entries
	case constant.MenuCategoryLunch:
		m.Lunch = entries
	case constant.MenuCategorySnacks:
		m.Snacks = entries
	case constant.MenuCategoryDinner:
		m.Dinner = entries
	}

	return m
}

// Clone copies the entry slices. What was set aside is never modified, so it is shared.
func (m Menu) Clone() Menu {
	m.Breakfast = slices.Clone(m.Breakfast)
	m.Lunch = slices.Clone(m.Lunch)
	m.Snacks = slices.Clone(m.Snacks)
	m.Dinner = slices.Clone(m.Dinner)

	return m
}

// Count is the number of entries across all categories.
func (m Menu) Count() int {
	return len(m.Breakfast) + len(m.Lunch) + len(m.Snacks) + len(m.Dinner)
}

// DefaultMenu is given to every new hotel.
func DefaultMenu() Menu {
	return Menu{
		Breakfast: []MenuEntry{NewMenuEntry("Idli", 30, ""), NewMenuEntry("Dosa", 40, "")},
		Lunch:     []MenuEntry{NewMenuEntry("Biriyani", 120, ""), NewMenuEntry("Pulao", 90, "")},
		Snacks:    []MenuEntry{NewMenuEntry("Samosa", 20, ""), NewMenuEntry("Vada", 15, "")},
		Dinner:    []MenuEntry{NewMenuEntry("Parotta", 30, ""), NewMenuEntry("Naan", 35, "")},
	}
}
