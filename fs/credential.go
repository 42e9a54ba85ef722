package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hboone/quotemill"
)

// DefaultKeyFile is the credential file checked when no explicit path is
// given, relative to the user's home directory.
const DefaultKeyFile = ".config/quotemill/api_key"

// Ensure KeyFile implements quotemill.KeyResolver at compile time.
var _ quotemill.KeyResolver = (*KeyFile)(nil)

// KeyFile resolves the classifier API key from a file on disk. The file
// holds the bare key; surrounding whitespace is ignored.
type KeyFile struct {
	path string
}

// NewKeyFile creates a resolver reading from path. An empty path falls
// back to DefaultKeyFile under the user's home directory.
func NewKeyFile(path string) *KeyFile {
	return &KeyFile{path: path}
}

// ResolveKey reads the key file.
func (k *KeyFile) ResolveKey() (string, error) {
	path := k.path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, DefaultKeyFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", quotemill.Errorf(quotemill.ENOTFOUND, "no key file at %s", path)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", quotemill.Errorf(quotemill.ENOTFOUND, "key file %s is empty", path)
	}
	return key, nil
}
