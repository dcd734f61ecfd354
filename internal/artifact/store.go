package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Allocate reserves a fresh, uniquely named artifact of the given kind
// without creating the file. Callers that write through external
// libraries (for example excelize SaveAs) use the returned Path.
func (s *Store) Allocate(kind Kind, ext string) (Artifact, error) {
	if !kind.Valid() {
		return Artifact{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	filename := fmt.Sprintf("%s_%s%s", kind, uuid.NewString(), ext)
	return Artifact{
		Kind:     kind,
		Filename: filename,
		Path:     filepath.Join(s.root, kind.Dir(), filename),
		URL:      s.baseURL + "/download/" + filename,
	}, nil
}

// Save writes data as a new artifact of the given kind.
func (s *Store) Save(kind Kind, ext string, data []byte) (Artifact, error) {
	art, err := s.Allocate(kind, ext)
	if err != nil {
		return Artifact{}, err
	}

	if err := os.WriteFile(art.Path, data, 0o644); err != nil {
		return Artifact{}, fmt.Errorf("write artifact %s: %w", art.Filename, err)
	}
	return art, nil
}

// Resolve locates a previously generated artifact by bare filename,
// searching the kind subdirectories in order. Filenames with path
// separators or parent references are rejected.
func (s *Store) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	for _, kind := range searchOrder {
		path := filepath.Join(s.root, kind.Dir(), filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
}
