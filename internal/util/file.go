package util

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// ValidateMimeType sniffs the first 512 bytes of reader and checks the
// detected MIME type against allowedTypes (full types or prefixes such as
// "application/pdf").
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsPDF reports whether the sniffed MIME type is a PDF document.
func IsPDF(mimeType string) bool {
	return mimeType == "application/pdf"
}
