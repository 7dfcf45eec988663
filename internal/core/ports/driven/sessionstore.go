package driven

import "time"

// RecentProject is one entry in the recent-project history.
type RecentProject struct {
	// ID is a stable identifier for the entry.
	ID string

	// Path is the absolute path of the project file.
	Path string

	// Name is the project display name.
	Name string

	// LastOpened is when the project was last opened or saved.
	LastOpened time.Time
}

// SessionStore records which project files were recently worked on.
type SessionStore interface {
	// Touch inserts or refreshes the entry for a project path.
	Touch(path, name string) error

	// Recent returns up to limit entries, most recent first.
	Recent(limit int) ([]RecentProject, error)

	// Forget removes the entry for a path, if present.
	Forget(path string) error

	// Close releases the underlying storage.
	Close() error
}
