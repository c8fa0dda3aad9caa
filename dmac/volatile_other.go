//go:build !tinygo

package dmac

import (
	"sync/atomic"
	"unsafe"
)

// Without a volatile intrinsic the accesses go through sync/atomic on the
// aligned 32-bit word containing the register. Narrow stores merge into that
// word with a compare-and-swap loop. Byte lanes are little-endian, like the
// Cortex-M bus.

func word(addr uintptr) (w *uint32, shift uint) {
	return (*uint32)(unsafe.Pointer(addr &^ 3)), uint(addr&3) << 3
}

func load8(addr uintptr) uint8 {
	w, shift := word(addr)
	return uint8(atomic.LoadUint32(w) >> shift)
}

func load16(addr uintptr) uint16 {
	w, shift := word(addr)
	return uint16(atomic.LoadUint32(w) >> shift)
}

func load32(addr uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func store8(addr uintptr, v uint8) {
	w, shift := word(addr)
	merge(w, 0xff<<shift, uint32(v)<<shift)
}

func store16(addr uintptr, v uint16) {
	w, shift := word(addr)
	merge(w, 0xffff<<shift, uint32(v)<<shift)
}

func store32(addr uintptr, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(addr)), v)
}

func merge(w *uint32, mask, v uint32) {
	for {
		old := atomic.LoadUint32(w)
		if atomic.CompareAndSwapUint32(w, old, old&^mask|v) {
			return
		}
	}
}
