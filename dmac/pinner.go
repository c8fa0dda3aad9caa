package dmac

import (
	"slices"
	"unsafe"
)

// Pinner keeps memory reachable while only the controller refers to it. The
// controller holds plain 32-bit bus addresses, which the garbage collector
// doesn't know about.
type Pinner struct {
	refs []unsafe.Pointer
}

func (p *Pinner) Pin(pointer unsafe.Pointer) {
	if pointer == nil {
		return
	}
	// Only add pointers which aren't pinned yet to keep p.refs small.
	if !slices.Contains(p.refs, pointer) {
		p.refs = append(p.refs, pointer)
	}
}

// Unpin releases all pinned memory. The backing array is kept to avoid an
// allocation the next time.
func (p *Pinner) Unpin() {
	clear(p.refs)
	p.refs = p.refs[:0]
}

// Pinned returns the number of pinned objects.
func (p *Pinner) Pinned() int { return len(p.refs) }

// PinSlice pins the backing array of slice.
func PinSlice[T any](p *Pinner, slice []T) {
	p.Pin(unsafe.Pointer(unsafe.SliceData(slice)))
}
