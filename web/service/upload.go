package service

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velmara/heritage-panel/config"
)

// ErrUnsupportedMediaType is returned for uploads that are not images.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// UploadService stores admin-uploaded images under the media folder
// with collision-free names. The external media host integration sits
// behind this boundary.
type UploadService struct{}

// Save writes the uploaded file and returns its public URL path.
func (s *UploadService) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedMediaType
	}

	mediaDir := config.GetMediaFolder()
	if err := os.MkdirAll(mediaDir, 0o750); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(mediaDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return "/media/" + name, nil
}
