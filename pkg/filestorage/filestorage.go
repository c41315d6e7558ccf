package filestorage

import "io"

// FileStorageInterface, evrak ve davetiye eklerinin saklandığı depolama sözleşmesidir.
type FileStorageInterface interface {
	Save(file io.Reader, originalFileName string, prefix string) (filePath string, err error)
	Delete(filePath string) error
}
