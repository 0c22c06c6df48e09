package grid

// Column is the external grid-column descriptor handed to the renderer.
// It is produced from the internal column instance at a single translation
// point; the renderer never sees the internal column types.
type Column struct {
	ID      string
	Title   string
	HasMenu bool

	// Grow distributes leftover horizontal space among stretched columns.
	// Zero means the column does not grow.
	Grow int

	// Width is an explicit pixel width. Zero means unset.
	Width int

	Theme *Theme
	Icon  string
}
