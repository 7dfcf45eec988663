package domain

import "fmt"

// Project aggregates everything a categorization session owns: the
// imported dataset, the codeframe, the assignment ledger and the
// categorization mode. All mutating operations go through Project methods
// so the cross-structure invariants hold at every step.
type Project struct {
	// Name is a display name, usually derived from the imported file.
	Name string

	// Mode is the categorization mode.
	Mode CategorizationMode

	// Dataset is the imported data. Never nil after import.
	Dataset *Dataset

	// Codeframe holds the user-defined categories.
	Codeframe *Codeframe

	// Ledger holds the assignments.
	Ledger *Ledger
}

// NewProject creates an empty single-mode project.
func NewProject(name string) *Project {
	return &Project{
		Name:      name,
		Mode:      ModeSingle,
		Dataset:   NewDataset("", nil, nil),
		Codeframe: NewCodeframe(),
		Ledger:    NewLedger(),
	}
}

// CreateCategory adds a category to the codeframe.
func (p *Project) CreateCategory(name string) error {
	return p.Codeframe.Create(name)
}

// RenameCategory renames a category and rewrites every ledger entry that
// references it.
func (p *Project) RenameCategory(old, new string) error {
	if err := p.Codeframe.Rename(old, new); err != nil {
		return err
	}
	p.Ledger.RenameCategory(old, new)
	return nil
}

// DeleteCategory removes a category. Responses assigned only to it return
// to Uncategorized; responses holding other categories keep those.
func (p *Project) DeleteCategory(name string) error {
	if err := p.Codeframe.Delete(name); err != nil {
		return err
	}
	p.Ledger.DropCategory(name)
	return nil
}

// Categorize assigns the selected responses to the given categories.
// In single mode the selection must name exactly one category, and it
// replaces any previous assignment. In multi mode categories accumulate.
func (p *Project) Categorize(keys []ResponseKey, categories []string) error {
	if len(categories) == 0 {
		return fmt.Errorf("%w: no categories selected", ErrInvalidInput)
	}
	if p.Mode == ModeSingle && len(categories) > 1 {
		return fmt.Errorf("%w: single mode allows one category per response", ErrInvalidInput)
	}
	for _, c := range categories {
		if !p.Codeframe.Has(c) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
	}
	for _, key := range keys {
		if _, ok := p.Dataset.Lookup(key); !ok {
			return fmt.Errorf("%w: response %s/%s", ErrNotFound, key.Row, key.Column)
		}
	}

	for _, key := range keys {
		if p.Mode == ModeSingle {
			p.Ledger.Set(key, categories[0])
			continue
		}
		for _, c := range categories {
			p.Ledger.Add(key, c)
		}
	}
	return nil
}

// Recategorize moves the selected responses out of one category into the
// given new ones. Used when reviewing a category's contents.
func (p *Project) Recategorize(keys []ResponseKey, from string, categories []string) error {
	if from != Uncategorized && !p.Codeframe.Has(from) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, from)
	}
	if err := p.Categorize(keys, categories); err != nil {
		return err
	}
	// Single-mode Categorize already replaced the old assignment.
	if p.Mode == ModeMulti && from != Uncategorized {
		for _, key := range keys {
			p.Ledger.Remove(key, from)
		}
	}
	return nil
}

// Uncategorized returns the responses with usable text and no assignment,
// in import order.
func (p *Project) Uncategorized() []Response {
	var out []Response
	for _, r := range p.Dataset.Responses {
		if !r.Missing() && !p.Ledger.Assigned(r.Key) {
			out = append(out, r)
		}
	}
	return out
}

// InCategory returns the responses assigned to a category, in import
// order. For the reserved Uncategorized name it returns the
// uncategorized pool.
func (p *Project) InCategory(name string) ([]Response, error) {
	if name == Uncategorized {
		return p.Uncategorized(), nil
	}
	if !p.Codeframe.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	var out []Response
	for _, r := range p.Dataset.Responses {
		for _, c := range p.Ledger.Categories(r.Key) {
			if c == name {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

// SetMode switches the categorization mode. Narrowing multi to single is
// lossy when any response holds more than one category: it is refused
// unless force is set, in which case each response keeps only its
// first-assigned category. The switch is irreversible in the sense that
// the discarded assignments cannot be recovered.
func (p *Project) SetMode(mode CategorizationMode, force bool) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidInput, mode)
	}
	if p.Mode == ModeMulti && mode == ModeSingle && p.Ledger.MaxAssignments() > 1 {
		if !force {
			return ErrModeConflict
		}
		p.Ledger.TruncateToFirst()
	}
	p.Mode = mode
	return nil
}

// Validate checks the cross-structure invariants. Used after loading a
// persisted project: any violation means the file is rejected wholesale.
func (p *Project) Validate() error {
	if !p.Mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrProjectValidation, p.Mode)
	}
	if p.Codeframe.Has(Uncategorized) {
		return fmt.Errorf("%w: codeframe contains reserved name", ErrProjectValidation)
	}
	seen := make(map[string]bool)
	for _, n := range p.Codeframe.Names() {
		if seen[n] {
			return fmt.Errorf("%w: duplicate category %q", ErrProjectValidation, n)
		}
		seen[n] = true
	}
	for _, key := range p.Ledger.Keys() {
		if _, ok := p.Dataset.Lookup(key); !ok {
			return fmt.Errorf("%w: assignment references unknown response %s/%s",
				ErrProjectValidation, key.Row, key.Column)
		}
		cats := p.Ledger.Categories(key)
		if p.Mode == ModeSingle && len(cats) > 1 {
			return fmt.Errorf("%w: response %s/%s holds %d categories in single mode",
				ErrProjectValidation, key.Row, key.Column, len(cats))
		}
		for _, c := range cats {
			if c == Uncategorized {
				return fmt.Errorf("%w: ledger references reserved name", ErrProjectValidation)
			}
			if !p.Codeframe.Has(c) {
				return fmt.Errorf("%w: assignment references unknown category %q",
					ErrProjectValidation, c)
			}
		}
	}
	return nil
}
