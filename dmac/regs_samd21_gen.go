//go:build !samd51

package dmac

// QoSCtrl is the quality of service control register QOSCTRL, 8-bit read-write.
type QoSCtrl struct{ RW[uint8] }

// ChID is the channel ID register CHID, 8-bit read-write.
type ChID struct{ RW[ChannelID] }

// ChCtrlA is the channel control A register CHCTRLA, 8-bit read-write.
type ChCtrlA struct{ RW[ChannelCtrlA] }

// ChCtrlB is the channel control B register CHCTRLB, 32-bit read-write.
type ChCtrlB struct{ RW[ChannelCtrlB] }

// ChIntEnClr is the channel interrupt enable clear register CHINTENCLR, 8-bit read-write.
type ChIntEnClr struct{ RW[ChannelInt] }

// ChIntEnSet is the channel interrupt enable set register CHINTENSET, 8-bit read-write.
type ChIntEnSet struct{ RW[ChannelInt] }

// ChIntFlag is the channel interrupt flag status and clear register CHINTFLAG, 8-bit read-write.
type ChIntFlag struct{ RW[ChannelInt] }

// ChStatus is the channel status register CHSTATUS, 8-bit read-only.
type ChStatus struct{ RO[ChannelStatus] }

type variantRegisters struct {
	QOSCTRL    QoSCtrl
	CHID       ChID
	CHCTRLA    ChCtrlA
	CHCTRLB    ChCtrlB
	CHINTENCLR ChIntEnClr
	CHINTENSET ChIntEnSet
	CHINTFLAG  ChIntFlag
	CHSTATUS   ChStatus
}

func newVariantRegisters(base uintptr) variantRegisters {
	return variantRegisters{
		QOSCTRL:    QoSCtrl{rw[uint8](base + 0x0e)},
		CHID:       ChID{rw[ChannelID](base + 0x3f)},
		CHCTRLA:    ChCtrlA{rw[ChannelCtrlA](base + 0x40)},
		CHCTRLB:    ChCtrlB{rw[ChannelCtrlB](base + 0x44)},
		CHINTENCLR: ChIntEnClr{rw[ChannelInt](base + 0x4c)},
		CHINTENSET: ChIntEnSet{rw[ChannelInt](base + 0x4d)},
		CHINTFLAG:  ChIntFlag{rw[ChannelInt](base + 0x4e)},
		CHSTATUS:   ChStatus{ro[ChannelStatus](base + 0x4f)},
	}
}
