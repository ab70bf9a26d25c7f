package middleware

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "estatedesk/internal/errors"
)

// MaxUploadSize is the largest accepted file, per file.
const MaxUploadSize = 5 << 20

// UploadField is the multipart field carrying uploaded files.
const UploadField = "files"

var allowedUploadExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
}

// UploadLimits checks every file in the multipart form before the handler
// runs: files above maxSize are rejected with 413, other extensions with 422.
func UploadLimits(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			if strings.Contains(err.Error(), "too large") {
				abortWithError(c, apperrors.ErrFileTooLarge)
				return
			}
			abortWithError(c, apperrors.WithMessage(apperrors.ErrNoFilesUploaded, "Invalid multipart form"))
			return
		}

		files := form.File[UploadField]
		if len(files) == 0 {
			abortWithError(c, apperrors.ErrNoFilesUploaded)
			return
		}

		for _, fh := range files {
			if fh.Size > maxSize {
				abortWithError(c, apperrors.ErrFileTooLarge)
				return
			}
			if !allowedUploadExts[strings.ToLower(filepath.Ext(fh.Filename))] {
				abortWithError(c, apperrors.ErrUnsupportedFileType)
				return
			}
		}
		c.Next()
	}
}
