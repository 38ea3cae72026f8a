package application

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint derives the content identity used by the duplicate tracker.
// xxhash64 is plenty here: the tracker only observes re-submissions, it is
// not a collision-resistant integrity measure.
func Fingerprint(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
