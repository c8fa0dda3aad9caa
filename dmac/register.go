package dmac

import "unsafe"

// Width is the set of register widths the controller implements.
type Width interface {
	~uint8 | ~uint16 | ~uint32
}

// Readable is implemented by every register.
type Readable[T Width] interface {
	Addr() uintptr

	// Read performs a single volatile load. Some registers clear flags when
	// read, so reads are never cached or merged.
	Read() T
}

// Writable is only implemented by registers the datasheet marks read-write.
type Writable[T Width] interface {
	Readable[T]

	// Write performs a single volatile store.
	Write(T)

	// SetBits and ClearBits are read-modify-write sequences of two volatile
	// accesses. They are not atomic.
	SetBits(mask T)
	ClearBits(mask T)
}

// RO is a read-only register of width T at a fixed address.
type RO[T Width] struct {
	addr uintptr
}

func (r RO[T]) Addr() uintptr { return r.addr }

//go:nosplit
func (r RO[T]) Read() T { return load[T](r.addr) }

// HasBits reports whether all bits of mask are set.
func (r RO[T]) HasBits(mask T) bool { return r.Read()&mask == mask }

// LoadBits returns the bits of mask which are set.
func (r RO[T]) LoadBits(mask T) T { return r.Read() & mask }

// RW is a read-write register of width T at a fixed address.
type RW[T Width] struct {
	RO[T]
}

//go:nosplit
func (r RW[T]) Write(v T) { store(r.addr, v) }

func (r RW[T]) SetBits(mask T)   { r.Write(r.Read() | mask) }
func (r RW[T]) ClearBits(mask T) { r.Write(r.Read() &^ mask) }

// StoreBits replaces the bits selected by mask with the matching bits of v.
func (r RW[T]) StoreBits(mask, v T) { r.Write(r.Read()&^mask | v&mask) }

func ro[T Width](addr uintptr) RO[T] { return RO[T]{addr} }
func rw[T Width](addr uintptr) RW[T] { return RW[T]{RO[T]{addr}} }

//go:nosplit
func load[T Width](addr uintptr) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		return T(load8(addr))
	case 2:
		return T(load16(addr))
	default:
		return T(load32(addr))
	}
}

//go:nosplit
func store[T Width](addr uintptr, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		store8(addr, uint8(v))
	case 2:
		store16(addr, uint16(v))
	default:
		store32(addr, uint32(v))
	}
}
