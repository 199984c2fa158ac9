// Package format provides input format detection so a non-PDF argument fails
// with a clear error before it reaches the PDF decoder.
package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	if strings.ToLower(filepath.Ext(filename)) == ".pdf" {
		return PDF
	}
	return Unknown
}

// DetectFromMagic checks leading magic bytes. More reliable than
// extension-based detection; a PDF starts with "%PDF".
func DetectFromMagic(data []byte) Format {
	if len(data) >= 4 && data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}
	return Unknown
}

// SniffFile reads the head of the file at path and returns its detected
// format. Files shorter than the magic sequence detect as Unknown.
func SniffFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	magic := make([]byte, 4)
	n, err := io.ReadFull(f, magic)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// Verify sniffs path and returns an error unless it detects the expected
// format.
func Verify(path string, want Format) error {
	got, err := SniffFile(path)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%s: expected %s content, detected %s", path, want, got)
	}
	return nil
}
