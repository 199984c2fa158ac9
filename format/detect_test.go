package format

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected Format
	}{
		{"pdf lowercase", "document.pdf", PDF},
		{"pdf uppercase", "DOCUMENT.PDF", PDF},
		{"pdf mixed case", "Document.Pdf", PDF},
		{"text file", "notes.txt", Unknown},
		{"no extension", "README", Unknown},
		{"pdf in middle", "file.pdf.bak", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.expected {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected Format
	}{
		{"pdf magic", []byte("%PDF-1.7\n"), PDF},
		{"exactly four bytes", []byte("%PDF"), PDF},
		{"html", []byte("<!DOCTYPE html>"), Unknown},
		{"zip magic", []byte{0x50, 0x4B, 0x03, 0x04}, Unknown},
		{"too short", []byte("%P"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.expected {
				t.Errorf("DetectFromMagic(%q) = %v, want %v", tt.data, got, tt.expected)
			}
		})
	}
}

func TestSniffFile(t *testing.T) {
	dir := t.TempDir()

	pdfPath := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4 fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := SniffFile(pdfPath); err != nil || got != PDF {
		t.Errorf("SniffFile(pdf) = %v, %v; want PDF, nil", got, err)
	}

	txtPath := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(txtPath, []byte("just text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := SniffFile(txtPath); err != nil || got != Unknown {
		t.Errorf("SniffFile(txt) = %v, %v; want Unknown, nil", got, err)
	}

	emptyPath := filepath.Join(dir, "empty.pdf")
	if err := os.WriteFile(emptyPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := SniffFile(emptyPath); err != nil || got != Unknown {
		t.Errorf("SniffFile(empty) = %v, %v; want Unknown, nil", got, err)
	}

	if _, err := SniffFile(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Error("SniffFile(missing) error = nil, want error")
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Verify(path, PDF); err != nil {
		t.Errorf("Verify(pdf, PDF) = %v, want nil", err)
	}

	bad := filepath.Join(dir, "bad.pdf")
	if err := os.WriteFile(bad, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Verify(bad, PDF); err == nil {
		t.Error("Verify(non-pdf, PDF) = nil, want error")
	}
}
