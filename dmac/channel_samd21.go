//go:build !samd51

package dmac

import "github.com/clktmr/samd/debug"

// The SAM D21 has a single set of channel registers. CHID selects the channel
// they refer to.
const (
	BaseAddress uintptr = 0x4100_4800

	// NumChannels is the number of channel register sets.
	NumChannels = 1

	// SelectableChannels is the number of channels CHID can select.
	SelectableChannels = 12

	tableChannels = SelectableChannels
)

// Select makes the shared channel registers refer to channel id.
//
// CHID is global state. If an interrupt handler selects another channel
// between Select and the following register access, that access silently
// hits the wrong channel. Callers must mask interrupts around every
// select-then-operate sequence, and handlers which select a channel must
// restore the previous selection before returning.
func (r *Registers) Select(id ChannelID) {
	checkChannel(id, SelectableChannels)
	r.CHID.Write(id)
}

// Selected returns the channel the shared channel registers refer to.
func (r *Registers) Selected() ChannelID {
	return r.CHID.Read()
}

// Channel is a channel behind the shared channel registers. Every method
// selects the channel before accessing it, see Select for the resulting
// obligations.
type Channel struct {
	r  *Registers
	id ChannelID
}

// Channel returns channel id. It panics if id is out of range.
func (r *Registers) Channel(id ChannelID) Channel {
	checkChannel(id, SelectableChannels)
	return Channel{r, id}
}

func (c Channel) sel() { c.r.CHID.Write(c.id) }

// Enable starts the channel. The descriptor in its table slot must be valid.
func (c Channel) Enable() {
	c.sel()
	c.r.CHCTRLA.SetBits(ChannelENABLE)
}

// Disable stops the channel. A beat in flight is not aborted, check Busy
// before reusing descriptor memory.
func (c Channel) Disable() {
	c.sel()
	c.r.CHCTRLA.ClearBits(ChannelENABLE)
}

func (c Channel) Enabled() bool {
	c.sel()
	return c.r.CHCTRLA.HasBits(ChannelENABLE)
}

// Reset resets the channel's registers. SWRST is ignored while the channel is
// enabled: call Disable and poll Enabled until it reports false first.
func (c Channel) Reset() {
	c.sel()
	debug.Assert(!c.r.CHCTRLA.HasBits(ChannelENABLE), "dmac: channel reset while enabled")
	c.r.CHCTRLA.Write(ChannelSWRST)
}

func (c Channel) SetControl(mask ChannelCtrlA) {
	c.sel()
	c.r.CHCTRLA.SetBits(mask)
}

func (c Channel) ClearControl(mask ChannelCtrlA) {
	c.sel()
	c.r.CHCTRLA.ClearBits(mask)
}

func (c Channel) Status() ChannelStatus {
	c.sel()
	return c.r.CHSTATUS.Read()
}

func (c Channel) IntFlags() ChannelInt {
	c.sel()
	return c.r.CHINTFLAG.Read()
}

// ClearIntFlags clears the flags in mask. Flags are cleared by writing one,
// other flags are not affected.
func (c Channel) ClearIntFlags(mask ChannelInt) {
	c.sel()
	c.r.CHINTFLAG.Write(mask)
}

func (c Channel) EnableInterrupts(mask ChannelInt) {
	c.sel()
	c.r.CHINTENSET.Write(mask)
}

func (c Channel) DisableInterrupts(mask ChannelInt) {
	c.sel()
	c.r.CHINTENCLR.Write(mask)
}

func (c Channel) InterruptsEnabled() ChannelInt {
	c.sel()
	return c.r.CHINTENSET.Read()
}

func (c Channel) SetPriority(lvl PriorityLevel) {
	c.sel()
	c.r.CHCTRLB.StoreBits(LVLMask, ChannelCtrlB(lvl)<<lvlPos)
}

func (c Channel) SetTrigger(src TriggerSource, act TriggerAction) {
	c.sel()
	c.r.CHCTRLB.StoreBits(TRIGSRCMask|TRIGACTMask,
		ChannelCtrlB(src)<<trigSrcPos|ChannelCtrlB(act)<<trigActPos)
}

func (c Channel) Command(cmd ChannelCmd) {
	c.sel()
	c.r.CHCTRLB.StoreBits(CMDMask, ChannelCtrlB(cmd)<<cmdPos)
}

func (r *Registers) enableCRC()  { r.CTRL.SetBits(CRCENABLE) }
func (r *Registers) disableCRC() { r.CTRL.ClearBits(CRCENABLE) }
