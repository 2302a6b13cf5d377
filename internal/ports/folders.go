package ports

// FolderStore performs the few filesystem mutations the index needs.
// Paths are slash-separated and relative to root.
type FolderStore interface {
	// CreateFolder creates a new directory; it fails if the path exists
	CreateFolder(root, rel string) error

	// RenameFolder renames an entry in place; it fails if the target exists
	RenameFolder(root, oldRel, newRel string) error

	// IsFile reports whether the entry at rel is a regular file rather
	// than a folder; IDs at the third level may be either
	IsFile(root, rel string) (bool, error)
}
