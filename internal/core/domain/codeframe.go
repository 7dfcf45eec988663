package domain

import "strings"

// Uncategorized is the reserved bucket for responses with no assignment.
// It always exists, is never stored in the codeframe or the ledger, and
// cannot be created, renamed or deleted.
const Uncategorized = "Uncategorized"

// Codeframe is the ordered set of user-defined category names.
// Names are unique and case-sensitive: "Fruit" and "fruit" are distinct
// categories. Leading and trailing whitespace is trimmed on entry.
type Codeframe struct {
	names []string
}

// NewCodeframe creates an empty codeframe.
func NewCodeframe() *Codeframe {
	return &Codeframe{}
}

// Names returns the category names in creation order.
func (c *Codeframe) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of user-defined categories.
func (c *Codeframe) Len() int {
	return len(c.names)
}

// Has returns true if the category exists. The reserved Uncategorized
// bucket is not part of the codeframe.
func (c *Codeframe) Has(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Create adds a new category.
func (c *Codeframe) Create(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidCategoryName
	}
	if name == Uncategorized {
		return ErrReservedCategory
	}
	if c.Has(name) {
		return ErrDuplicateCategory
	}
	c.names = append(c.names, name)
	return nil
}

// Rename changes a category's name, keeping its position.
func (c *Codeframe) Rename(old, new string) error {
	new = strings.TrimSpace(new)
	if new == "" {
		return ErrInvalidCategoryName
	}
	if old == Uncategorized || new == Uncategorized {
		return ErrReservedCategory
	}
	if c.Has(new) {
		return ErrDuplicateCategory
	}
	for i, n := range c.names {
		if n == old {
			c.names[i] = new
			return nil
		}
	}
	return ErrUnknownCategory
}

// Delete removes a category. Ledger cleanup is the caller's job; use
// Project.DeleteCategory to keep both structures consistent.
func (c *Codeframe) Delete(name string) error {
	if name == Uncategorized {
		return ErrReservedCategory
	}
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			return nil
		}
	}
	return ErrUnknownCategory
}
