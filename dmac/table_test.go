package dmac_test

import (
	"testing"

	"github.com/clktmr/samd/dmac"
)

func TestTablePublish(t *testing.T) {
	regs, mem := newRegs(t)

	table := dmac.NewTable(4)
	if table.Len() != 4 {
		t.Fatal("table length", table.Len())
	}
	for id := range dmac.ChannelID(4) {
		if !dmac.IsAligned(table.Head(id)) || !dmac.IsAligned(table.Live(id)) {
			t.Fatal("unaligned table slot", id)
		}
		if table.Head(id) == table.Live(id) {
			t.Fatal("write-back section shares table slot", id)
		}
	}

	chain := dmac.MakeDescriptors(2)
	head := table.Head(1)
	head.BTCTRL = dmac.VALID
	head.Link(&chain[0])
	chain[0].BTCTRL = dmac.VALID
	chain[0].Link(&chain[1])
	chain[1].BTCTRL = dmac.VALID
	table.Pin(chain)

	table.Publish(regs)
	if !table.Published() {
		t.Fatal("not published")
	}
	if got := regs.BASEADDR.Read(); got != table.Addr() || got != dmac.Addr(table.Head(0)) {
		t.Errorf("BASEADDR %#x, expected %#x", got, table.Addr())
	}
	if got := mem.RawUint32(0x38); got != table.WritebackAddr() || got == table.Addr() {
		t.Errorf("WRBADDR %#x", got)
	}

	n := 0
	for range dmac.Walk(head, dmac.Resolver(chain)) {
		n++
	}
	if n != 3 {
		t.Errorf("chain of channel 1 has %d descriptors", n)
	}

	mem.SetRawUint32(0x28, 1<<1)
	if table.Reclaim() {
		t.Error("reclaimed while channel busy")
	}
	mem.SetRawUint32(0x28, 0)
	mem.SetRawUint32(0x2c, 1<<1)
	if table.Reclaim() {
		t.Error("reclaimed while channel pending")
	}
	mem.SetRawUint32(0x2c, 0)

	// an armed channel fetches its table slot on the next trigger
	regs.Enable(dmac.LVLENAll)
	regs.Channel(1).Enable()
	if table.Reclaim() {
		t.Error("reclaimed while controller enabled")
	}
	regs.Disable()
	if !table.Published() {
		t.Error("failed reclaim unpublished the table")
	}
	if !table.Reclaim() {
		t.Error("reclaim failed")
	}
	if table.Published() {
		t.Error("still published")
	}
	if !table.Reclaim() {
		t.Error("reclaiming an unpublished table must succeed")
	}
}

func TestSharedTable(t *testing.T) {
	regs, _ := newRegs(t)

	table := dmac.NewSharedTable(2)
	if table.Head(1) != table.Live(1) {
		t.Error("shared table has separate write-back section")
	}
	table.Publish(regs)
	if regs.BASEADDR.Read() != regs.WRBADDR.Read() {
		t.Error("WRBADDR differs from BASEADDR")
	}

	// publishing another table replaces the first one
	other := dmac.NewTable(1)
	other.Publish(regs)
	if table.Published() {
		t.Error("replaced table still published")
	}
	if regs.BASEADDR.Read() != other.Addr() {
		t.Error("BASEADDR not updated")
	}
	other.Reclaim()
}

func TestTableBounds(t *testing.T) {
	table := dmac.NewTable(2)
	mustPanic(t, "less than 2", func() { table.Head(2) })
	mustPanic(t, "less than 2", func() { table.Live(5) })
	mustPanic(t, "table size", func() { dmac.NewTable(0) })
	mustPanic(t, "table size", func() { dmac.NewSharedTable(33) })
}
