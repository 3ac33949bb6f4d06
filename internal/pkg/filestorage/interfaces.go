package filestorage

import "mime/multipart"

// FileStorage defines the interface for stored uploads.
type FileStorage interface {
	// SaveFile saves a file and returns its accessible path.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves a file under a subdirectory.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing
	// file is not an error.
	DeleteFile(filePath string) error

	// GetFullPath resolves the filesystem path behind an accessible path.
	GetFullPath(fileURL string) string
}
