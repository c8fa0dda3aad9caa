//go:build samd51

package dmac

import "github.com/clktmr/samd/debug"

// The SAM D51 has an array of channel register blocks starting at offset
// 0x40. No selection is involved.
const (
	BaseAddress uintptr = 0x4100_A000

	NumChannels = 32

	// ChannelBlockSize is the distance between two channel register
	// blocks.
	ChannelBlockSize = 0x10

	channelOffset = 0x40
	tableChannels = NumChannels
)

type variantRegisters struct {
	channels uintptr
}

func newVariantRegisters(base uintptr) variantRegisters {
	return variantRegisters{base + channelOffset}
}

// Channel is the register block of a single channel.
type Channel struct {
	ChannelRegisters

	r  *Registers
	id ChannelID
}

// Channel returns channel id. It panics if id is out of range.
func (r *Registers) Channel(id ChannelID) Channel {
	checkChannel(id, NumChannels)
	addr := r.channels + uintptr(id)*ChannelBlockSize
	return Channel{newChannelRegisters(addr), r, id}
}

// Addr returns the address of the channel's register block.
func (c Channel) Addr() uintptr { return c.CHCTRLA.Addr() }

func (c Channel) Registers() ChannelRegisters { return c.ChannelRegisters }

// Enable starts the channel. The descriptor in its table slot must be valid.
func (c Channel) Enable() { c.CHCTRLA.SetBits(ChannelENABLE) }

// Disable stops the channel. A burst in flight is not aborted, check Busy
// before reusing descriptor memory.
func (c Channel) Disable() { c.CHCTRLA.ClearBits(ChannelENABLE) }

func (c Channel) Enabled() bool { return c.CHCTRLA.HasBits(ChannelENABLE) }

// Reset resets the channel's registers. SWRST is ignored while the channel is
// enabled: call Disable and poll Enabled until it reports false first.
func (c Channel) Reset() {
	debug.Assert(!c.Enabled(), "dmac: channel reset while enabled")
	c.CHCTRLA.Write(ChannelSWRST)
}

func (c Channel) SetControl(mask ChannelCtrlA)   { c.CHCTRLA.SetBits(mask) }
func (c Channel) ClearControl(mask ChannelCtrlA) { c.CHCTRLA.ClearBits(mask) }

func (c Channel) Status() ChannelStatus { return c.CHSTATUS.Read() }

func (c Channel) IntFlags() ChannelInt { return c.CHINTFLAG.Read() }

// ClearIntFlags clears the flags in mask. Flags are cleared by writing one,
// other flags are not affected.
func (c Channel) ClearIntFlags(mask ChannelInt) { c.CHINTFLAG.Write(mask) }

func (c Channel) EnableInterrupts(mask ChannelInt)  { c.CHINTENSET.Write(mask) }
func (c Channel) DisableInterrupts(mask ChannelInt) { c.CHINTENCLR.Write(mask) }
func (c Channel) InterruptsEnabled() ChannelInt     { return c.CHINTENSET.Read() }

func (c Channel) SetPriority(lvl PriorityLevel) { c.CHPRILVL.Write(lvl & Level3) }

func (c Channel) SetTrigger(src TriggerSource, act TriggerAction) {
	c.CHCTRLA.StoreBits(TRIGSRCMask|TRIGACTMask,
		ChannelCtrlA(src)<<trigSrcPos|ChannelCtrlA(act)<<trigActPos)
}

func (c Channel) Command(cmd ChannelCmd) {
	c.CHCTRLB.StoreBits(CMDMask, ChannelCtrlB(cmd))
}

// The SAM D51 CRC engine has no enable bit.
func (r *Registers) enableCRC()  {}
func (r *Registers) disableCRC() {}
