package gauge

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/roffe/speedgauge/pkg/common"
)

const stateVersion = 1

var ErrBadState = errors.New("bad gauge state")

// SaveState returns the persisted view state: a version byte followed by
// the progress as a big endian int32. MaxProgress is capped to the int32
// range, so the value always fits.
func (r *Renderer) SaveState() []byte {
	b := make([]byte, 5)
	b[0] = stateVersion
	binary.BigEndian.PutUint32(b[1:], uint32(int32(r.progress)))
	return b
}

// RestoreState loads a blob produced by SaveState. The restored progress
// is clamped like any other update.
func (r *Renderer) RestoreState(b []byte) error {
	if len(b) != 5 {
		return fmt.Errorf("%w: length %d", ErrBadState, len(b))
	}
	if b[0] != stateVersion {
		return fmt.Errorf("%w: version %d", ErrBadState, b[0])
	}
	p := int(int32(binary.BigEndian.Uint32(b[1:])))
	r.progress = common.Clamp(p, 0, r.max)
	return nil
}
