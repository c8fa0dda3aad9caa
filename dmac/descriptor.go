package dmac

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"unsafe"
)

// The controller fetches descriptors on its own. Their layout and alignment
// are fixed by the hardware.
const (
	DescriptorSize  = 16
	DescriptorAlign = 16
)

// TransferControl are the bits of a descriptor's BTCTRL field.
type TransferControl uint16

const (
	VALID TransferControl = 1 << 0 // descriptor may be fetched

	EVOSELDisable TransferControl = 0 << 1 // no event output
	EVOSELBlock   TransferControl = 1 << 1 // event strobe when a block completes
	EVOSELBeat    TransferControl = 3 << 1 // event strobe per beat (burst on SAM D51)
	EVOSELMask    TransferControl = 3 << 1

	BlockActNoAct   TransferControl = 0 << 3 // disable channel if last block
	BlockActInt     TransferControl = 1 << 3 // disable if last block, interrupt
	BlockActSuspend TransferControl = 2 << 3 // suspend channel
	BlockActBoth    TransferControl = 3 << 3 // suspend and interrupt
	BlockActMask    TransferControl = 3 << 3

	BeatByte     TransferControl = 0 << 8
	BeatHalfWord TransferControl = 1 << 8
	BeatWord     TransferControl = 2 << 8
	BeatSizeMask TransferControl = 3 << 8

	SRCINC  TransferControl = 1 << 10
	DSTINC  TransferControl = 1 << 11
	STEPSEL TransferControl = 1 << 12 // step size applies to source, else destination

	StepSizeMask TransferControl = 7 << stepSizePos

	stepSizePos = 13
)

// StepSize returns the BTCTRL bits for an address increment of 1<<shift
// beats, shift 0 to 7.
func StepSize(shift uint) TransferControl {
	return TransferControl(shift)<<stepSizePos&StepSizeMask
}

// BeatSize returns the size of one beat in bytes.
func (c TransferControl) BeatSize() int { return 1 << (c & BeatSizeMask >> 8) }

// StepShift returns the address increment of the stepped address as a power
// of two beats.
func (c TransferControl) StepShift() uint { return uint(c&StepSizeMask) >> stepSizePos }

// Descriptor describes a single block transfer. It is read, and in write-back
// mode written, by the controller without CPU involvement.
//
// A Descriptor belongs to the CPU until the table it is reachable from is
// published. From then on the hardware shares it, and it must not be modified
// while its channel is busy. Descriptors must be aligned to DescriptorAlign,
// use MakeDescriptors to allocate them.
type Descriptor struct {
	BTCTRL   TransferControl // block transfer control
	BTCNT    uint16          // block transfer count in beats
	SRCADDR  uint32          // source address, end of block if incremented
	DSTADDR  uint32          // destination address, end of block if incremented
	DESCADDR uint32          // next descriptor, zero ends the chain
}

var (
	_ [DescriptorSize - unsafe.Sizeof(Descriptor{})]struct{}
	_ [unsafe.Sizeof(Descriptor{}) - DescriptorSize]struct{}
	_ [unsafe.Offsetof(Descriptor{}.DESCADDR) - 12]struct{}
)

// MakeDescriptors returns n zeroed descriptors starting at an address aligned
// to DescriptorAlign. Since every descriptor is DescriptorSize long, all
// elements are aligned.
func MakeDescriptors(n int) []Descriptor {
	if n <= 0 {
		return nil
	}
	const wordsPerDesc = DescriptorSize / 4
	buf := make([]uint32, n*wordsPerDesc+wordsPerDesc-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	shift := (DescriptorAlign - addr%DescriptorAlign) % DescriptorAlign / 4
	return unsafe.Slice((*Descriptor)(unsafe.Pointer(&buf[shift])), n)
}

// NewDescriptor allocates a single aligned descriptor.
func NewDescriptor() *Descriptor {
	return &MakeDescriptors(1)[0]
}

// IsAligned reports whether the hardware can fetch d.
func IsAligned(d *Descriptor) bool {
	return uintptr(unsafe.Pointer(d))%DescriptorAlign == 0
}

// Addr returns the bus address of d, or zero if d is nil.
func Addr(d *Descriptor) uint32 {
	return uint32(uintptr(unsafe.Pointer(d)))
}

// Valid reports whether the VALID bit is set.
func (d *Descriptor) Valid() bool { return d.BTCTRL&VALID != 0 }

// Last reports whether d ends its chain.
func (d *Descriptor) Last() bool { return d.DESCADDR == 0 }

// Link sets next as the descriptor following d. A nil next ends the chain.
func (d *Descriptor) Link(next *Descriptor) {
	d.DESCADDR = Addr(next)
}

// SetBlock sets a block of beats beats from src to dst. When an address is
// incremented the controller expects the address following the block, so src
// and dst are adjusted according to BTCTRL. Set BTCTRL first.
func (d *Descriptor) SetBlock(src, dst uint32, beats uint16) {
	d.BTCNT = beats
	d.SRCADDR = d.blockEnd(src, SRCINC, d.BTCTRL&STEPSEL != 0)
	d.DSTADDR = d.blockEnd(dst, DSTINC, d.BTCTRL&STEPSEL == 0)
}

func (d *Descriptor) blockEnd(addr uint32, inc TransferControl, stepped bool) uint32 {
	if d.BTCTRL&inc == 0 {
		return addr
	}
	n := uint32(d.BTCNT) * uint32(d.BTCTRL.BeatSize())
	if stepped {
		n <<= d.BTCTRL.StepShift()
	}
	return addr + n
}

// AppendBinary appends the descriptor in the layout the controller reads.
func (d *Descriptor) AppendBinary(b []byte) ([]byte, error) {
	b = binary.LittleEndian.AppendUint16(b, uint16(d.BTCTRL))
	b = binary.LittleEndian.AppendUint16(b, d.BTCNT)
	b = binary.LittleEndian.AppendUint32(b, d.SRCADDR)
	b = binary.LittleEndian.AppendUint32(b, d.DSTADDR)
	b = binary.LittleEndian.AppendUint32(b, d.DESCADDR)
	return b, nil
}

func (d *Descriptor) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, DescriptorSize))
}

// ErrShortDescriptor is returned when decoding less than DescriptorSize bytes.
var ErrShortDescriptor = errors.New("dmac: short descriptor")

func (d *Descriptor) UnmarshalBinary(data []byte) error {
	if len(data) < DescriptorSize {
		return ErrShortDescriptor
	}
	d.BTCTRL = TransferControl(binary.LittleEndian.Uint16(data[0:]))
	d.BTCNT = binary.LittleEndian.Uint16(data[2:])
	d.SRCADDR = binary.LittleEndian.Uint32(data[4:])
	d.DSTADDR = binary.LittleEndian.Uint32(data[8:])
	d.DESCADDR = binary.LittleEndian.Uint32(data[12:])
	return nil
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("btctrl=%#04x btcnt=%d src=%#08x dst=%#08x next=%#08x",
		uint16(d.BTCTRL), d.BTCNT, d.SRCADDR, d.DSTADDR, d.DESCADDR)
}

// Walk iterates over the chain starting at first the way the controller
// follows it. resolve maps a DESCADDR to its descriptor. The walk ends at the
// zero address, at a descriptor without VALID, at an address resolve returns
// nil for, or when a descriptor is reached a second time, as in a circular
// chain.
func Walk(first *Descriptor, resolve func(addr uint32) *Descriptor) iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		seen := make(map[*Descriptor]struct{})
		for d := first; d != nil && d.Valid(); {
			if _, ok := seen[d]; ok {
				return
			}
			seen[d] = struct{}{}
			if !yield(d) || d.Last() {
				return
			}
			d = resolve(d.DESCADDR)
		}
	}
}

// Resolver returns a resolve function for Walk over descriptors in ds, as
// the controller would see them in memory.
func Resolver(ds ...[]Descriptor) func(addr uint32) *Descriptor {
	return func(addr uint32) *Descriptor {
		for _, s := range ds {
			for i := range s {
				if Addr(&s[i]) == addr {
					return &s[i]
				}
			}
		}
		return nil
	}
}
