//go:build samd51

package dmac

// ChCtrlA is the channel control A register CHCTRLA, 32-bit read-write.
type ChCtrlA struct{ RW[ChannelCtrlA] }

// ChCtrlB is the channel control B register CHCTRLB, 8-bit read-write.
type ChCtrlB struct{ RW[ChannelCtrlB] }

// ChPriLvl is the channel priority level register CHPRILVL, 8-bit read-write.
type ChPriLvl struct{ RW[PriorityLevel] }

// ChEvCtrl is the channel event control register CHEVCTRL, 8-bit read-write.
type ChEvCtrl struct{ RW[ChannelEvCtrl] }

// ChIntEnClr is the channel interrupt enable clear register CHINTENCLR, 8-bit read-write.
type ChIntEnClr struct{ RW[ChannelInt] }

// ChIntEnSet is the channel interrupt enable set register CHINTENSET, 8-bit read-write.
type ChIntEnSet struct{ RW[ChannelInt] }

// ChIntFlag is the channel interrupt flag status and clear register CHINTFLAG, 8-bit read-write.
type ChIntFlag struct{ RW[ChannelInt] }

// ChStatus is the channel status register CHSTATUS, 8-bit read-only.
type ChStatus struct{ RO[ChannelStatus] }

// ChannelRegisters is the register block of a single channel.
type ChannelRegisters struct {
	CHCTRLA    ChCtrlA
	CHCTRLB    ChCtrlB
	CHPRILVL   ChPriLvl
	CHEVCTRL   ChEvCtrl
	CHINTENCLR ChIntEnClr
	CHINTENSET ChIntEnSet
	CHINTFLAG  ChIntFlag
	CHSTATUS   ChStatus
}

func newChannelRegisters(base uintptr) ChannelRegisters {
	return ChannelRegisters{
		CHCTRLA:    ChCtrlA{rw[ChannelCtrlA](base + 0x00)},
		CHCTRLB:    ChCtrlB{rw[ChannelCtrlB](base + 0x04)},
		CHPRILVL:   ChPriLvl{rw[PriorityLevel](base + 0x05)},
		CHEVCTRL:   ChEvCtrl{rw[ChannelEvCtrl](base + 0x06)},
		CHINTENCLR: ChIntEnClr{rw[ChannelInt](base + 0x0c)},
		CHINTENSET: ChIntEnSet{rw[ChannelInt](base + 0x0d)},
		CHINTFLAG:  ChIntFlag{rw[ChannelInt](base + 0x0e)},
		CHSTATUS:   ChStatus{ro[ChannelStatus](base + 0x0f)},
	}
}
