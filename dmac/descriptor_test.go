package dmac_test

import (
	"bytes"
	"encoding/binary"
	"slices"
	"testing"
	"unsafe"

	"github.com/clktmr/samd/dmac"
)

func TestDescriptorAlignment(t *testing.T) {
	for n := 1; n < 40; n++ {
		ds := dmac.MakeDescriptors(n)
		if len(ds) != n {
			t.Fatalf("len %d, expected %d", len(ds), n)
		}
		for i := range ds {
			if !dmac.IsAligned(&ds[i]) {
				t.Fatalf("descriptor %d of %d unaligned: %p", i, n, &ds[i])
			}
		}
	}
	for range 100 {
		if d := dmac.NewDescriptor(); !dmac.IsAligned(d) {
			t.Fatalf("unaligned: %p", d)
		}
	}
	if dmac.MakeDescriptors(0) != nil {
		t.Error("expected nil for zero descriptors")
	}
}

func TestDescriptorLayout(t *testing.T) {
	d := dmac.NewDescriptor()
	d.BTCTRL = dmac.VALID | dmac.BeatWord | dmac.SRCINC
	d.BTCNT = 4
	d.SRCADDR = 0x2000_0000
	d.DSTADDR = 0x2000_1000
	d.DESCADDR = 0

	expected := make([]byte, 0, dmac.DescriptorSize)
	expected = binary.LittleEndian.AppendUint16(expected, uint16(dmac.VALID|dmac.BeatWord|dmac.SRCINC))
	expected = binary.LittleEndian.AppendUint16(expected, 4)
	expected = binary.LittleEndian.AppendUint32(expected, 0x2000_0000)
	expected = binary.LittleEndian.AppendUint32(expected, 0x2000_1000)
	expected = binary.LittleEndian.AppendUint32(expected, 0)

	raw := unsafe.Slice((*byte)(unsafe.Pointer(d)), unsafe.Sizeof(*d))
	if !bytes.Equal(raw, expected) {
		t.Errorf("memory layout\n got % x\nwant % x", raw, expected)
	}

	b, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, expected) {
		t.Errorf("marshalled\n got % x\nwant % x", b, expected)
	}

	var u dmac.Descriptor
	if err := u.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}
	if u != *d {
		t.Errorf("unmarshalled %v, expected %v", &u, d)
	}
	if err := u.UnmarshalBinary(b[:15]); err != dmac.ErrShortDescriptor {
		t.Errorf("expected ErrShortDescriptor, got %v", err)
	}
}

func TestSetBlock(t *testing.T) {
	tests := []struct {
		ctrl     dmac.TransferControl
		src, dst uint32
	}{
		{dmac.BeatByte, 0x100, 0x200},
		{dmac.BeatByte | dmac.SRCINC, 0x100 + 8, 0x200},
		{dmac.BeatWord | dmac.DSTINC, 0x100, 0x200 + 32},
		{dmac.BeatHalfWord | dmac.SRCINC | dmac.DSTINC, 0x100 + 16, 0x200 + 16},
		{dmac.BeatHalfWord | dmac.SRCINC | dmac.STEPSEL | dmac.StepSize(2), 0x100 + 64, 0x200},
		{dmac.BeatByte | dmac.DSTINC | dmac.StepSize(1), 0x100, 0x200 + 16},
	}
	for i, tc := range tests {
		d := dmac.NewDescriptor()
		d.BTCTRL = tc.ctrl
		d.SetBlock(0x100, 0x200, 8)
		if d.BTCNT != 8 || d.SRCADDR != tc.src || d.DSTADDR != tc.dst {
			t.Errorf("%d: %v", i, d)
		}
	}
}

func TestChainWalk(t *testing.T) {
	ds := dmac.MakeDescriptors(3)
	a, b, c := &ds[0], &ds[1], &ds[2]
	for i := range ds {
		ds[i].BTCTRL = dmac.VALID
		ds[i].BTCNT = uint16(i)
	}
	a.Link(b)
	b.Link(c)
	c.Link(nil)

	if a.Last() || b.Last() || !c.Last() {
		t.Fatal("wrong chain end")
	}

	got := slices.Collect(dmac.Walk(a, dmac.Resolver(ds)))
	if !slices.Equal(got, []*dmac.Descriptor{a, b, c}) {
		t.Errorf("visited %v", got)
	}

	// circular chain visits every descriptor once
	c.Link(a)
	got = slices.Collect(dmac.Walk(b, dmac.Resolver(ds)))
	if !slices.Equal(got, []*dmac.Descriptor{b, c, a}) {
		t.Errorf("circular: visited %v", got)
	}

	// invalid descriptor ends the chain
	c.BTCTRL &^= dmac.VALID
	got = slices.Collect(dmac.Walk(a, dmac.Resolver(ds)))
	if !slices.Equal(got, []*dmac.Descriptor{a, b}) {
		t.Errorf("invalid: visited %v", got)
	}

	// unknown address ends the chain
	c.BTCTRL |= dmac.VALID
	b.DESCADDR = 0x1234_5670
	got = slices.Collect(dmac.Walk(a, dmac.Resolver(ds)))
	if !slices.Equal(got, []*dmac.Descriptor{a, b}) {
		t.Errorf("unresolved: visited %v", got)
	}

	// early break
	b.Link(c)
	for d := range dmac.Walk(a, dmac.Resolver(ds)) {
		if d != a {
			t.Errorf("visited %v after break", d)
		}
		break
	}
}

func TestTransferControl(t *testing.T) {
	if s := (dmac.BeatWord).BeatSize(); s != 4 {
		t.Errorf("word beat size %d", s)
	}
	if s := (dmac.BeatHalfWord).BeatSize(); s != 2 {
		t.Errorf("half-word beat size %d", s)
	}
	if s := dmac.StepSize(7).StepShift(); s != 7 {
		t.Errorf("step shift %d", s)
	}
	if dmac.StepSize(8) != 0 {
		t.Error("step size overflow not masked")
	}
}
