// Package identifier generates and validates the prefixed entity IDs used
// across the system ("FL-", "AC-", "CM-", "RES-", "PAY-", "PAS-", "BM-",
// "ADM-"). IDs are derived from UUIDs, so generation is collision-free
// without the retry loops a small random ID space would need.
package identifier

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh ID with the given prefix, e.g. New("FL-") -> "FL-9F2C41AB".
func New(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + strings.ToUpper(raw[:8])
}

// Validate checks that id carries the expected prefix and a non-empty suffix.
func Validate(id, prefix string) error {
	if !strings.HasPrefix(id, prefix) {
		return fmt.Errorf("invalid id %q: expected prefix %q", id, prefix)
	}
	if len(id) == len(prefix) {
		return fmt.Errorf("invalid id %q: missing value after prefix %q", id, prefix)
	}
	return nil
}
