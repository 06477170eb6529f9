package util

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// SafeFilename strips directory components from a client-supplied file
// name so uploads cannot escape the target directory.
func SafeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == ".." {
		return "upload"
	}
	return base
}

// ExtractPDFText reads the text layer of a PDF. Pages that fail to
// extract are skipped; the result must carry enough text to be worth
// scoring.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var pages []string
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
			continue
		}
		if trimmed := strings.TrimSpace(pageText); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}

	result := strings.TrimSpace(strings.Join(pages, "\n\n"))

	if len(result) == 0 {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text from PDF: %w", lastErr)
		}
		return "", fmt.Errorf("no text extracted from PDF (PDF might be empty or scanned)")
	}
	if len(result) < 100 {
		return "", fmt.Errorf("content too short for meaningful scoring")
	}

	return result, nil
}
