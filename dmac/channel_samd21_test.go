//go:build !samd51

package dmac_test

import (
	"testing"

	"github.com/clktmr/samd/dmac"
)

func TestChannelRegisterOffsets(t *testing.T) {
	regs, mem := newRegs(t)
	base := mem.Base()

	offsets := []struct {
		name string
		addr uintptr
		off  uintptr
	}{
		{"QOSCTRL", regs.QOSCTRL.Addr(), 0x0e},
		{"CHID", regs.CHID.Addr(), 0x3f},
		{"CHCTRLA", regs.CHCTRLA.Addr(), 0x40},
		{"CHCTRLB", regs.CHCTRLB.Addr(), 0x44},
		{"CHINTENCLR", regs.CHINTENCLR.Addr(), 0x4c},
		{"CHINTENSET", regs.CHINTENSET.Addr(), 0x4d},
		{"CHINTFLAG", regs.CHINTFLAG.Addr(), 0x4e},
		{"CHSTATUS", regs.CHSTATUS.Addr(), 0x4f},
	}
	for _, o := range offsets {
		if o.addr != base+o.off {
			t.Errorf("%s at %#x, expected %#x", o.name, o.addr-base, o.off)
		}
	}

	if _, ok := any(regs.CHSTATUS).(dmac.Writable[dmac.ChannelStatus]); ok {
		t.Error("CHSTATUS is writable")
	}
}

func TestChannelSelect(t *testing.T) {
	regs, mem := newRegs(t)

	regs.Select(7)
	if regs.Selected() != 7 || mem.RawUint8(0x3f) != 7 {
		t.Fatal("CHID not written")
	}

	ch := regs.Channel(3)
	if ch.ID() != 3 {
		t.Fatal("wrong id")
	}
	ch.Enable()
	if regs.Selected() != 3 {
		t.Error("operation didn't select channel")
	}
	if mem.RawUint8(0x40) != uint8(dmac.ChannelENABLE) {
		t.Errorf("CHCTRLA %#x", mem.RawUint8(0x40))
	}
	if !ch.Enabled() {
		t.Error("not enabled")
	}

	// an operation on another channel redirects the shared registers
	regs.Channel(5).Status()
	if regs.Selected() != 5 {
		t.Error("Status didn't select channel")
	}
	ch.Disable()
	if regs.Selected() != 3 || ch.Enabled() {
		t.Error("Disable")
	}

	ch.SetControl(dmac.ChannelRUNSTDBY)
	ch.Reset()
	if mem.RawUint8(0x40) != uint8(dmac.ChannelSWRST) {
		t.Errorf("CHCTRLA after reset %#x", mem.RawUint8(0x40))
	}
}

func TestChannelOperations(t *testing.T) {
	regs, mem := newRegs(t)
	ch := regs.Channel(2)

	ch.SetPriority(dmac.Level2)
	ch.SetTrigger(0x0d, dmac.TriggerBeat)
	ch.Command(dmac.CmdSuspend)
	want := uint32(2)<<5 | 0x0d<<8 | uint32(dmac.TriggerBeat)<<22 | 1<<24
	if got := mem.RawUint32(0x44); got != want {
		t.Errorf("CHCTRLB %#x, expected %#x", got, want)
	}
	ch.SetPriority(dmac.Level1)
	if got := mem.RawUint32(0x44); got != want&^(3<<5)|1<<5 {
		t.Errorf("CHCTRLB after priority change %#x", got)
	}

	ch.EnableInterrupts(dmac.ChannelTCMPL | dmac.ChannelTERR)
	if mem.RawUint8(0x4d) != uint8(dmac.ChannelTCMPL|dmac.ChannelTERR) {
		t.Error("CHINTENSET")
	}
	ch.DisableInterrupts(dmac.ChannelTERR)
	if mem.RawUint8(0x4c) != uint8(dmac.ChannelTERR) {
		t.Error("CHINTENCLR")
	}

	mem.SetRawUint8(0x4e, uint8(dmac.ChannelIntAll))
	if ch.IntFlags() != dmac.ChannelIntAll {
		t.Error("CHINTFLAG")
	}
	ch.ClearIntFlags(dmac.ChannelTCMPL)
	if mem.RawUint8(0x4e) != uint8(dmac.ChannelTCMPL) {
		t.Error("flags must be cleared by writing one, not read-modify-write")
	}

	mem.SetRawUint8(0x4f, uint8(dmac.ChannelBUSY))
	if ch.Status() != dmac.ChannelBUSY {
		t.Error("CHSTATUS")
	}

	mem.SetRawUint32(0x28, 1<<2)
	mem.SetRawUint32(0x2c, 1<<3)
	if !ch.Busy() || ch.Pending() {
		t.Error("busy/pending of channel 2")
	}
	ch.Trigger()
	if mem.RawUint32(0x10) != 1<<2 {
		t.Error("SWTRIGCTRL")
	}
}

func TestChannelOutOfRange(t *testing.T) {
	regs, _ := newRegs(t)

	regs.Channel(dmac.SelectableChannels - 1)
	mustPanic(t, "less than 12", func() { regs.Channel(dmac.SelectableChannels) })
	mustPanic(t, "less than 12", func() { regs.Select(200) })
}
