package filestorage

// StoredFile describes a file written to storage
type StoredFile struct {
	// Path is relative to the storage root, slash separated (media/general/<uuid>.png)
	Path     string
	URL      string
	Size     int64
	MimeType string
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save writes data under dir with a generated name carrying ext
	Save(data []byte, dir, ext, mimeType string) (*StoredFile, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(path string) error

	// URL returns the public URL of a stored path
	URL(path string) string
}
