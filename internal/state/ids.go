package state

import (
	"github.com/google/uuid"
)

// newCurveID returns a fresh identifier for a curve. Ids only label curves
// in logs and scenes; joins are decided by point handles.
func newCurveID() string {
	return uuid.NewString()
}
