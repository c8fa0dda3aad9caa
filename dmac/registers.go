package dmac

import "github.com/clktmr/samd/debug"

// Registers is the register block of a DMAC instance. Every field is a typed
// handle; read-only registers have no Write method.
type Registers struct {
	commonRegisters
	variantRegisters
}

// DMAC is the controller's register block at its fixed bus address.
var DMAC = NewRegisters(BaseAddress)

// NewRegisters returns the handles of a register block at base. Only
// BaseAddress refers to the real peripheral, other bases are useful for
// simulated memory.
func NewRegisters(base uintptr) *Registers {
	return &Registers{
		newCommonRegisters(base),
		newVariantRegisters(base),
	}
}

// Enable starts the controller with the priority levels in levels enabled.
func (r *Registers) Enable(levels CtrlFlags) {
	r.CTRL.SetBits(DMAENABLE | levels&LVLENAll)
}

// Disable stops the controller. An ongoing burst is completed first, poll
// Enabled to wait for it.
func (r *Registers) Disable() {
	r.CTRL.ClearBits(DMAENABLE)
}

func (r *Registers) Enabled() bool {
	return r.CTRL.HasBits(DMAENABLE)
}

// Reset resets all controller and channel registers. The controller must be
// disabled.
func (r *Registers) Reset() {
	debug.Assert(!r.Enabled(), "dmac: reset while enabled")
	r.CTRL.Write(SWRST)
}

// Busy returns a mask with a bit set for every busy channel.
func (r *Registers) Busy() uint32 { return r.BUSYCH.Read() }

// Pending returns a mask with a bit set for every channel with a pending
// transfer.
func (r *Registers) Pending() uint32 { return r.PENDCH.Read() }

// IntStatus returns a mask with a bit set for every channel with a pending
// interrupt.
func (r *Registers) IntStatus() uint32 { return r.INTSTATUS.Read() }

// Active returns what the controller is currently working on.
func (r *Registers) Active() ActiveStatus { return r.ACTIVE.Read() }

// IntPending returns the lowest channel with a pending interrupt and its
// flags.
func (r *Registers) IntPending() IntPendFlags { return r.INTPEND.Read() }

// ClearIntPending clears the interrupt flags in flags of channel id. Only
// TERR, TCMPL and SUSP can be cleared. It panics if id is out of range.
func (r *Registers) ClearIntPending(id ChannelID, flags IntPendFlags) {
	checkChannel(id, tableChannels)
	flags &= TERR | TCMPL | SUSP
	r.INTPEND.Write(IntPendFlags(id)&intPendIDMask | flags)
}

// Trigger issues a software trigger on all channels in mask.
func (r *Registers) Trigger(mask uint32) {
	r.SWTRIGCTRL.SetBits(mask)
}

// SetDebugRun selects whether the controller keeps running while the CPU is
// halted by a debugger.
func (r *Registers) SetDebugRun(run bool) {
	if run {
		r.DBGCTRL.SetBits(DBGRUN)
	} else {
		r.DBGCTRL.ClearBits(DBGRUN)
	}
}
