package domain

// Ledger maps response keys to their assigned category names. It is the
// single source of truth for categorization state: a key absent from the
// ledger is uncategorized. Category lists keep assignment order, which is
// what a forced multi-to-single switch falls back on.
type Ledger struct {
	entries map[ResponseKey][]string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[ResponseKey][]string)}
}

// Categories returns the categories assigned to a key, in assignment
// order. Nil means the key is uncategorized.
func (l *Ledger) Categories(key ResponseKey) []string {
	cats := l.entries[key]
	if cats == nil {
		return nil
	}
	out := make([]string, len(cats))
	copy(out, cats)
	return out
}

// Assigned returns true if the key holds at least one category.
func (l *Ledger) Assigned(key ResponseKey) bool {
	return len(l.entries[key]) > 0
}

// Len returns the number of categorized response keys.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Keys returns every categorized response key, in no particular order.
func (l *Ledger) Keys() []ResponseKey {
	keys := make([]ResponseKey, 0, len(l.entries))
	for k := range l.entries {
		keys = append(keys, k)
	}
	return keys
}

// Set replaces the key's assignment with exactly one category.
func (l *Ledger) Set(key ResponseKey, category string) {
	l.entries[key] = []string{category}
}

// Add appends a category to the key's assignment if not already present.
func (l *Ledger) Add(key ResponseKey, category string) {
	for _, c := range l.entries[key] {
		if c == category {
			return
		}
	}
	l.entries[key] = append(l.entries[key], category)
}

// Remove drops one category from the key's assignment. A key left with no
// categories is removed from the ledger entirely, returning it to the
// uncategorized pool.
func (l *Ledger) Remove(key ResponseKey, category string) {
	cats := l.entries[key]
	for i, c := range cats {
		if c == category {
			cats = append(cats[:i], cats[i+1:]...)
			break
		}
	}
	if len(cats) == 0 {
		delete(l.entries, key)
		return
	}
	l.entries[key] = cats
}

// Clear removes the key's entry, returning it to uncategorized.
func (l *Ledger) Clear(key ResponseKey) {
	delete(l.entries, key)
}

// InCategory returns every key assigned to the category.
func (l *Ledger) InCategory(category string) []ResponseKey {
	var keys []ResponseKey
	for k, cats := range l.entries {
		for _, c := range cats {
			if c == category {
				keys = append(keys, k)
				break
			}
		}
	}
	return keys
}

// DropCategory removes the category from every entry. Entries left empty
// are deleted, which is what sends their responses back to Uncategorized.
func (l *Ledger) DropCategory(category string) {
	for k := range l.entries {
		l.Remove(k, category)
	}
}

// RenameCategory rewrites the category name in every entry.
func (l *Ledger) RenameCategory(old, new string) {
	for k, cats := range l.entries {
		for i, c := range cats {
			if c == old {
				cats[i] = new
			}
		}
		l.entries[k] = cats
	}
}

// TruncateToFirst reduces every entry to its first-assigned category.
// Used by the forced multi-to-single mode switch.
func (l *Ledger) TruncateToFirst() {
	for k, cats := range l.entries {
		if len(cats) > 1 {
			l.entries[k] = cats[:1]
		}
	}
}

// MaxAssignments returns the largest number of categories held by any key.
func (l *Ledger) MaxAssignments() int {
	max := 0
	for _, cats := range l.entries {
		if len(cats) > max {
			max = len(cats)
		}
	}
	return max
}
