// Package secret manages the shared token-signing secret. The secret is the
// first line of an out-of-band file that every minting/verifying process must
// share. It is read once at startup; a missing or empty secret is a startup
// error, never a per-request one. Reload supports explicit hot rotation.
package secret

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ErrEmpty is returned when the secret file exists but its first line is blank.
var ErrEmpty = errors.New("secret: file contains no key")

// Keeper holds the signing secret in memory.
type Keeper struct {
	path string

	mu  sync.RWMutex
	key []byte
}

// Load reads the first line of the file at path and returns a Keeper holding
// it. Every service that mints or verifies tokens must load the same file.
func Load(path string) (*Keeper, error) {
	k := &Keeper{path: path}
	if err := k.Reload(); err != nil {
		return nil, err
	}
	return k, nil
}

// Key returns the current signing secret.
func (k *Keeper) Key() []byte {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.key
}

// Reload re-reads the secret file. On failure the previous key is kept.
func (k *Keeper) Reload() error {
	f, err := os.Open(k.path)
	if err != nil {
		return fmt.Errorf("secret: open %s: %w", k.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("secret: read %s: %w", k.path, err)
		}
		return ErrEmpty
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return ErrEmpty
	}

	k.mu.Lock()
	k.key = []byte(line)
	k.mu.Unlock()
	return nil
}
