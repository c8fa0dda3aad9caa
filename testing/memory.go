// Package testing provides simulated peripheral memory for host tests of the
// dmac package.
//
// The memory is ordinary Go memory, aligned like a peripheral block. Register
// handles created with dmac.NewRegisters(m.Base()) then access it instead of
// the bus.
package testing

import (
	"encoding/binary"
	"unsafe"
)

// Align of the simulated memory's base address.
const Align = 16

// Memory is a block of simulated register memory. Accessors starting with
// Raw bypass the register model and stand in for the hardware side.
type Memory struct {
	words []uint32
	buf   []byte
}

// NewMemory returns size bytes of zeroed memory.
func NewMemory(size int) *Memory {
	words := make([]uint32, (size+3)/4+Align/4-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(words)))
	shift := (Align - addr%Align) % Align / 4
	m := &Memory{words: words[shift:]}
	m.buf = unsafe.Slice((*byte)(unsafe.Pointer(&m.words[0])), size)
	return m
}

// Base returns the address to pass as peripheral base.
func (m *Memory) Base() uintptr {
	return uintptr(unsafe.Pointer(&m.words[0]))
}

// Bytes returns the memory contents.
func (m *Memory) Bytes() []byte { return m.buf }

// Fill sets every byte to b.
func (m *Memory) Fill(b byte) {
	for i := range m.buf {
		m.buf[i] = b
	}
}

func (m *Memory) RawUint8(off int) uint8   { return m.buf[off] }
func (m *Memory) RawUint16(off int) uint16 { return binary.LittleEndian.Uint16(m.buf[off:]) }
func (m *Memory) RawUint32(off int) uint32 { return binary.LittleEndian.Uint32(m.buf[off:]) }

func (m *Memory) SetRawUint8(off int, v uint8) { m.buf[off] = v }

func (m *Memory) SetRawUint16(off int, v uint16) {
	binary.LittleEndian.PutUint16(m.buf[off:], v)
}

func (m *Memory) SetRawUint32(off int, v uint32) {
	binary.LittleEndian.PutUint32(m.buf[off:], v)
}
