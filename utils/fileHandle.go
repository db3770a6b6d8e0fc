package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// contentExtensions lists the accepted upload extensions per content type
var contentExtensions = map[string][]string{
	"video": {".mp4", ".webm", ".mov"},
	"pdf":   {".pdf"},
}

// ValidateContentFile checks the uploaded file extension against the
// declared content type (video or pdf).
func ValidateContentFile(file *multipart.FileHeader, contentType string) error {
	allowed, ok := contentExtensions[contentType]
	if !ok {
		return fmt.Errorf("unsupported content type: %s", contentType)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return fmt.Errorf("file extension %s not allowed for %s content", ext, contentType)
}

// SaveUploadedFile stores an uploaded content file under destDir with
// a collision-free name and returns the stored path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}

// GetFileURL maps a stored file name to its public URL
func GetFileURL(fileName string) string {
	if fileName == "" {
		return ""
	}
	return "/uploads/" + fileName
}
