package mock

import (
	"time"

	"github.com/frederickpi/pagedate"
)

var _ pagedate.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of pagedate.Normalizer.
type Normalizer struct {
	NormalizeFn func(raw string, method pagedate.Method) (time.Time, bool, bool)
}

func (n *Normalizer) Normalize(raw string, method pagedate.Method) (time.Time, bool, bool) {
	return n.NormalizeFn(raw, method)
}
