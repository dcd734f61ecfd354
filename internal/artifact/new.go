package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store manages generated output files on disk. Each kind gets its own
// subdirectory under the root; download resolution searches the
// subdirectories in a fixed order.
type Store struct {
	root    string
	baseURL string
}

// New creates a Store rooted at root and pre-creates all kind
// subdirectories. baseURL prefixes download links and may be empty for
// relative URLs.
func New(root, baseURL string) (*Store, error) {
	if root == "" {
		root = "outputs"
	}

	for _, kind := range searchOrder {
		dir := filepath.Join(root, kind.Dir())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create artifact dir %s: %w", dir, err)
		}
	}

	return &Store{
		root:    root,
		baseURL: baseURL,
	}, nil
}
