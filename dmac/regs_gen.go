package dmac

// Ctrl is the control register CTRL, 16-bit read-write.
type Ctrl struct{ RW[CtrlFlags] }

// CRCCtrl is the CRC control register CRCCTRL, 16-bit read-write.
type CRCCtrl struct{ RW[CRCCtrlFlags] }

// CRCDataIn is the CRC data input register CRCDATAIN, 32-bit read-write.
type CRCDataIn struct{ RW[uint32] }

// CRCChecksum is the CRC checksum register CRCCHKSUM, 32-bit read-write.
type CRCChecksum struct{ RW[uint32] }

// CRCStatus is the CRC status register CRCSTATUS, 8-bit read-write.
type CRCStatus struct{ RW[CRCStatusFlags] }

// DebugCtrl is the debug control register DBGCTRL, 8-bit read-write.
type DebugCtrl struct{ RW[uint8] }

// SwTrigCtrl is the software trigger control register SWTRIGCTRL, 32-bit read-write.
type SwTrigCtrl struct{ RW[uint32] }

// PriCtrl0 is the priority control 0 register PRICTRL0, 32-bit read-write.
type PriCtrl0 struct{ RW[uint32] }

// IntPend is the interrupt pending register INTPEND, 16-bit read-write.
type IntPend struct{ RW[IntPendFlags] }

// IntStatus is the interrupt status register INTSTATUS, 32-bit read-only.
type IntStatus struct{ RO[uint32] }

// BusyCh is the busy channels register BUSYCH, 32-bit read-only.
type BusyCh struct{ RO[uint32] }

// PendCh is the pending channels register PENDCH, 32-bit read-only.
type PendCh struct{ RO[uint32] }

// Active is the active channel and levels register ACTIVE, 32-bit read-only.
type Active struct{ RO[ActiveStatus] }

// BaseAddr is the descriptor memory section base address register BASEADDR, 32-bit read-write.
type BaseAddr struct{ RW[uint32] }

// WrbAddr is the write-back memory section base address register WRBADDR, 32-bit read-write.
type WrbAddr struct{ RW[uint32] }

type commonRegisters struct {
	CTRL       Ctrl
	CRCCTRL    CRCCtrl
	CRCDATAIN  CRCDataIn
	CRCCHKSUM  CRCChecksum
	CRCSTATUS  CRCStatus
	DBGCTRL    DebugCtrl
	SWTRIGCTRL SwTrigCtrl
	PRICTRL0   PriCtrl0
	INTPEND    IntPend
	INTSTATUS  IntStatus
	BUSYCH     BusyCh
	PENDCH     PendCh
	ACTIVE     Active
	BASEADDR   BaseAddr
	WRBADDR    WrbAddr
}

func newCommonRegisters(base uintptr) commonRegisters {
	return commonRegisters{
		CTRL:       Ctrl{rw[CtrlFlags](base + 0x00)},
		CRCCTRL:    CRCCtrl{rw[CRCCtrlFlags](base + 0x02)},
		CRCDATAIN:  CRCDataIn{rw[uint32](base + 0x04)},
		CRCCHKSUM:  CRCChecksum{rw[uint32](base + 0x08)},
		CRCSTATUS:  CRCStatus{rw[CRCStatusFlags](base + 0x0c)},
		DBGCTRL:    DebugCtrl{rw[uint8](base + 0x0d)},
		SWTRIGCTRL: SwTrigCtrl{rw[uint32](base + 0x10)},
		PRICTRL0:   PriCtrl0{rw[uint32](base + 0x14)},
		INTPEND:    IntPend{rw[IntPendFlags](base + 0x20)},
		INTSTATUS:  IntStatus{ro[uint32](base + 0x24)},
		BUSYCH:     BusyCh{ro[uint32](base + 0x28)},
		PENDCH:     PendCh{ro[uint32](base + 0x2c)},
		ACTIVE:     Active{ro[ActiveStatus](base + 0x30)},
		BASEADDR:   BaseAddr{rw[uint32](base + 0x34)},
		WRBADDR:    WrbAddr{rw[uint32](base + 0x38)},
	}
}
