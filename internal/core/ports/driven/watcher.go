package driven

// ProjectWatcher reports external modification of the open project file,
// so long-running sessions can warn before overwriting someone else's
// changes.
type ProjectWatcher interface {
	// Watch starts watching path. Each external write is delivered as one
	// value on the returned channel. The channel closes when the watcher
	// is closed.
	Watch(path string) (<-chan string, error)

	// Close stops watching and releases resources.
	Close() error
}
