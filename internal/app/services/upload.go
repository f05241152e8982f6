package services

import (
	"errors"
	"fmt"

	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/filestorage"
)

const megabyte = 1 << 20

// decodeImage turns a base64 upload into a verified image, mapping decoder errors to
// the messages shown in the dashboard.
func decodeImage(fileData, mimeType string, maxBytes int64) (*filestorage.Image, error) {
	if fileData == "" {
		return nil, apperrors.NewValidationError("file_data is required")
	}

	data, declared, err := filestorage.DecodeBase64(fileData)
	if err != nil {
		if errors.Is(err, filestorage.ErrEmptyFile) {
			return nil, apperrors.NewValidationError("File is empty")
		}
		return nil, apperrors.NewValidationError("file_data must be base64 encoded")
	}
	if mimeType != "" {
		declared = mimeType
	}

	img, err := filestorage.VerifyImage(data, declared, maxBytes)
	switch {
	case err == nil:
		return img, nil
	case errors.Is(err, filestorage.ErrFileTooLarge):
		return nil, apperrors.NewCustomError(apperrors.ErrPayloadTooLarge,
			fmt.Sprintf("File size must be less than %dMB", maxBytes/megabyte))
	case errors.Is(err, filestorage.ErrNotAnImage), errors.Is(err, filestorage.ErrMimeMismatched):
		return nil, apperrors.NewCustomError(apperrors.ErrUnsupportedMediaType, "Only image files are allowed")
	case errors.Is(err, filestorage.ErrEmptyFile):
		return nil, apperrors.NewValidationError("File is empty")
	}
	return nil, err
}
