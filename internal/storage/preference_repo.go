package storage

import (
	"github.com/manav03panchal/studinest/internal/model"
)

// ThemeRepo stores the color theme.
type ThemeRepo struct {
	slot *Slot[model.Theme]
}

// NewThemeRepo creates a new theme repository.
func NewThemeRepo(store *Store, def model.Theme) *ThemeRepo {
	return &ThemeRepo{slot: NewSlot(store, model.SliceTheme, def)}
}

// Get returns the current theme.
func (r *ThemeRepo) Get() model.Theme {
	return r.slot.Get()
}

// Set replaces the theme.
func (r *ThemeRepo) Set(t model.Theme) {
	r.slot.Set(t)
}

// Toggle switches between light and dark and returns the new theme.
func (r *ThemeRepo) Toggle() model.Theme {
	var next model.Theme
	r.slot.Update(func(t model.Theme) model.Theme {
		next = t.Toggle()
		return next
	})
	return next
}

// Reload re-reads the slice from the medium.
func (r *ThemeRepo) Reload() {
	r.slot.Reload()
}

// PageRepo stores the page shown at startup.
type PageRepo struct {
	slot *Slot[model.Page]
}

// NewPageRepo creates a new page repository.
func NewPageRepo(store *Store, def model.Page) *PageRepo {
	return &PageRepo{slot: NewSlot(store, model.SlicePage, def)}
}

// Get returns the current page.
func (r *PageRepo) Get() model.Page {
	return r.slot.Get()
}

// Set replaces the current page.
func (r *PageRepo) Set(p model.Page) {
	r.slot.Set(p)
}

// Reload re-reads the slice from the medium.
func (r *PageRepo) Reload() {
	r.slot.Reload()
}

// LastWriteErr reports whether the last change failed to persist.
func (r *ThemeRepo) LastWriteErr() error {
	return r.slot.LastWriteErr()
}

// LastWriteErr reports whether the last change failed to persist.
func (r *PageRepo) LastWriteErr() error {
	return r.slot.LastWriteErr()
}
