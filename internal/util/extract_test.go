package util

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "stellenanzeige.pdf", "stellenanzeige.pdf"},
		{"unix traversal", "../../etc/cron.d/evil.pdf", "evil.pdf"},
		{"windows traversal", `..\..\evil.pdf`, "evil.pdf"},
		{"absolute path", "/tmp/evil.pdf", "evil.pdf"},
		{"dot segments only", "..", "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeFilename(tt.in)
			assert.Equal(t, tt.want, got)
			assert.False(t, strings.ContainsAny(got, `/\`))
		})
	}
}

func TestSafeFilenameStaysInsideUploadDir(t *testing.T) {
	joined := filepath.Join("uploads/job_ads", SafeFilename("../../../escape.pdf"))
	assert.Equal(t, filepath.Join("uploads", "job_ads", "escape.pdf"), joined)
}
