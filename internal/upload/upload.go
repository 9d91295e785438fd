// Package upload stores media files attached to menu items and backgrounds.
package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".mp4":  true,
	".webm": true,
}

// Saver decides where uploaded files land inside Dir.
type Saver struct {
	Dir string
}

func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure upload dir: %w", err)
	}
	return &Saver{Dir: dir}, nil
}

// Allowed reports whether the filename carries an accepted media extension.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SafeName strips any path components, keeps only conservative characters
// and prefixes a short random id so repeated uploads of the same filename
// never clobber each other.
func SafeName(filename string) string {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	stem = b.String()
	if stem == "" {
		stem = "file"
	}

	return uuid.NewString()[:8] + "_" + stem + ext
}

// Plan validates the upload and returns the stored filename together with
// the full destination path. The caller performs the actual write.
func (s *Saver) Plan(file *multipart.FileHeader) (name, dst string, err error) {
	if file == nil {
		return "", "", fmt.Errorf("no file supplied")
	}
	if !Allowed(file.Filename) {
		return "", "", fmt.Errorf("file type not allowed: %s", filepath.Ext(file.Filename))
	}

	name = SafeName(file.Filename)
	return name, filepath.Join(s.Dir, name), nil
}
