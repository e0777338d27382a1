package note

// ListOptions provides filtering options for listing notes.
type ListOptions struct {
	Archived   *bool
	Categories []string
	Limit      int
	Offset     int
}
