package crc

import (
	"strings"
	"testing"
	"testing/iotest"
)

const check = "123456789"

func TestCRC16(t *testing.T) {
	sum, err := CRC16(strings.NewReader(check))
	if err != nil {
		t.Fatal(err)
	}
	if sum != 0x29b1 {
		t.Errorf("got %#04x, expected 0x29b1", sum)
	}

	// same result when read in small pieces
	sum, err = CRC16(iotest.OneByteReader(strings.NewReader(check)))
	if err != nil || sum != 0x29b1 {
		t.Errorf("one byte reader: %#04x, %v", sum, err)
	}

	if _, err := CRC16(iotest.ErrReader(iotest.ErrTimeout)); err != iotest.ErrTimeout {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestCRC32(t *testing.T) {
	sum, err := CRC32(strings.NewReader(check))
	if err != nil {
		t.Fatal(err)
	}
	if sum != 0xcbf43926 {
		t.Errorf("got %#08x, expected 0xcbf43926", sum)
	}
	if Register32(sum) == sum || Register32(0xffff_ffff) != 0 {
		t.Error("register conversion")
	}
}
