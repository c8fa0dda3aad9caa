//go:build tinygo

package dmac

import (
	"runtime/volatile"
	"unsafe"
)

//go:inline
func load8(addr uintptr) uint8 { return volatile.LoadUint8((*uint8)(unsafe.Pointer(addr))) }

//go:inline
func load16(addr uintptr) uint16 { return volatile.LoadUint16((*uint16)(unsafe.Pointer(addr))) }

//go:inline
func load32(addr uintptr) uint32 { return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr))) }

//go:inline
func store8(addr uintptr, v uint8) { volatile.StoreUint8((*uint8)(unsafe.Pointer(addr)), v) }

//go:inline
func store16(addr uintptr, v uint16) { volatile.StoreUint16((*uint16)(unsafe.Pointer(addr)), v) }

//go:inline
func store32(addr uintptr, v uint32) { volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), v) }
