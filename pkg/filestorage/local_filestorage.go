package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (FileStorageInterface, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("depolama dizini oluşturulamadı: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

func (s *LocalFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	ext := filepath.Ext(originalFileName)
	uniqueFileName := fmt.Sprintf("%s-%s%s", time.Now().Format("2006-01-02"), uuid.New().String(), ext)

	// Tarih bazlı alt dizin; tek dizinde binlerce dosya birikmesin.
	datePath := filepath.Join(prefix, time.Now().Format("2006/01"))
	fullDirPath := filepath.Join(s.basePath, datePath)
	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(fullDirPath, uniqueFileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(datePath, uniqueFileName)), nil
}

func (s *LocalFileStorage) Delete(filePath string) error {
	cleaned := filepath.Clean(strings.TrimPrefix(filePath, "/"))
	if strings.HasPrefix(cleaned, "..") {
		return fmt.Errorf("geçersiz dosya yolu: %s", filePath)
	}
	return os.Remove(filepath.Join(s.basePath, cleaned))
}
