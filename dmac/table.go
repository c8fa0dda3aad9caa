package dmac

import "github.com/clktmr/samd/debug"

// Table is the descriptor memory section of a controller. Slot n holds the
// first descriptor of channel n. The controller keeps the working copy of each
// channel's current descriptor in the write-back section.
type Table struct {
	base      []Descriptor
	writeback []Descriptor

	pins  Pinner
	owner *Registers
}

// Published tables are referenced from here until reclaimed. The controller
// may be their only other user.
var published = make(map[*Registers]*Table)

// NewTable allocates descriptor and write-back sections for channels 0 to
// n-1. The hardware updates only the write-back section, the descriptors in
// the table stay untouched.
func NewTable(n int) *Table {
	t := NewSharedTable(n)
	t.writeback = MakeDescriptors(n)
	return t
}

// NewSharedTable is like NewTable but the write-back section is the table
// itself. The controller overwrites a channel's first descriptor while the
// channel runs.
func NewSharedTable(n int) *Table {
	if n < 1 || n > tableChannels {
		panic("dmac: table size out of range")
	}
	return &Table{base: MakeDescriptors(n)}
}

// Len returns the number of channel slots.
func (t *Table) Len() int { return len(t.base) }

// Head returns the first descriptor of channel id.
func (t *Table) Head(id ChannelID) *Descriptor {
	checkChannel(id, len(t.base))
	return &t.base[id]
}

// Live returns the write-back descriptor of channel id. While the channel is
// busy it holds the controller's working copy, e.g. the remaining BTCNT.
func (t *Table) Live(id ChannelID) *Descriptor {
	checkChannel(id, len(t.base))
	if t.writeback == nil {
		return &t.base[id]
	}
	return &t.writeback[id]
}

// Pin keeps chain memory linked from the table alive until the table is
// reclaimed.
func (t *Table) Pin(chain []Descriptor) {
	debug.Assert(len(chain) == 0 || IsAligned(&chain[0]), "dmac: unaligned descriptors")
	PinSlice(&t.pins, chain)
}

// Publish hands the table to the controller by writing BASEADDR and WRBADDR.
// From now on, descriptors reachable from the table are shared with the
// hardware. The controller must be disabled.
func (t *Table) Publish(r *Registers) {
	debug.Assert(!r.Enabled(), "dmac: table published while enabled")
	debug.Assert(IsAligned(&t.base[0]), "dmac: unaligned descriptor section")

	wb := t.base
	if t.writeback != nil {
		wb = t.writeback
		debug.Assert(IsAligned(&wb[0]), "dmac: unaligned write-back section")
	}

	PinSlice(&t.pins, t.base)
	PinSlice(&t.pins, wb)
	if old := published[r]; old != nil && old != t {
		old.release()
	}
	published[r] = t
	t.owner = r

	r.BASEADDR.Write(Addr(&t.base[0]))
	r.WRBADDR.Write(Addr(&wb[0]))
}

// Published reports whether the table was published and not yet reclaimed.
func (t *Table) Published() bool { return t.owner != nil }

// Reclaim returns the table to the CPU. It fails while the owning controller
// is enabled or any of its channels is busy or pending, in which case the
// hardware may still access the descriptors. An armed channel fetches its
// table slot on the next trigger, so the controller must be disabled first and
// stay disabled until another table was published.
func (t *Table) Reclaim() bool {
	r := t.owner
	if r == nil {
		return true
	}
	if r.Enabled() || r.Busy() != 0 || r.Pending() != 0 {
		return false
	}
	if published[r] == t {
		delete(published, r)
	}
	t.release()
	return true
}

func (t *Table) release() {
	t.pins.Unpin()
	t.owner = nil
}

// Addr returns the bus address of the descriptor section.
func (t *Table) Addr() uint32 { return Addr(&t.base[0]) }

// WritebackAddr returns the bus address of the write-back section.
func (t *Table) WritebackAddr() uint32 { return Addr(t.Live(0)) }
