package filestorage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrEmptyFile      = errors.New("file is empty")
	ErrInvalidBase64  = errors.New("file data is not valid base64")
	ErrFileTooLarge   = errors.New("file exceeds the size limit")
	ErrNotAnImage     = errors.New("only image files are allowed")
	ErrMimeMismatched = errors.New("declared type does not match file content")
)

// Image is a decoded and verified image upload
type Image struct {
	Data     []byte
	MimeType string
	Ext      string
}

// DecodeBase64 accepts raw base64 or a data URL ("data:image/png;base64,...").
// The media type of a data URL is returned as declared when present.
func DecodeBase64(payload string) (data []byte, declared string, err error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 {
			return nil, "", ErrInvalidBase64
		}
		header := payload[len("data:"):comma]
		declared = strings.TrimSuffix(header, ";base64")
		payload = payload[comma+1:]
	}
	if payload == "" {
		return nil, declared, ErrEmptyFile
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some clients strip the padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, declared, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
		}
	}
	if len(data) == 0 {
		return nil, declared, ErrEmptyFile
	}
	return data, declared, nil
}

// VerifyImage sniffs data and checks it is an image within maxBytes. When declared
// is set it must also be an image type.
func VerifyImage(data []byte, declared string, maxBytes int64) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrFileTooLarge, len(data), maxBytes)
	}

	if declared != "" && !strings.HasPrefix(strings.ToLower(strings.TrimSpace(declared)), "image/") {
		return nil, fmt.Errorf("%w: declared %s", ErrNotAnImage, declared)
	}

	detected := mimetype.Detect(data)
	if !isImage(detected) {
		if declared != "" {
			return nil, fmt.Errorf("%w: declared %s, detected %s", ErrMimeMismatched, declared, detected.String())
		}
		return nil, fmt.Errorf("%w: detected %s", ErrNotAnImage, detected.String())
	}

	return &Image{
		Data:     data,
		MimeType: detected.String(),
		Ext:      detected.Extension(),
	}, nil
}

func isImage(m *mimetype.MIME) bool {
	for mt := m; mt != nil; mt = mt.Parent() {
		if strings.HasPrefix(mt.String(), "image/") {
			return true
		}
	}
	return false
}
