// Package crc computes the checksums the DMAC CRC engine produces, for
// checking CRCCHKSUM values read from a target.
package crc

import (
	"bufio"
	"flag"
	"fmt"
	"hash/crc32"
	"io"
	"log"
	"math/bits"
	"os"

	"github.com/sigurn/crc16"
)

const usageString = `DMAC CRC reference.

Usage: %s [flags] <file>

`

var (
	flags = flag.NewFlagSet("crc", flag.ExitOnError)

	poly     = flags.String("poly", "crc16", "crc16 | crc32")
	register = flags.Bool("register", false, "print the CRCCHKSUM register content instead of the standard checksum")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "crc")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	f, err := os.Open(flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	var sum uint32
	switch *poly {
	case "crc16":
		sum, err = CRC16(f)
	case "crc32":
		sum, err = CRC32(f)
		if *register {
			sum = Register32(sum)
		}
	default:
		log.Fatalln("unknown polynomial:", *poly)
	}
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("%#08x\n", sum)
}

// The engine's CRC-16 is CRC-CCITT, seeded with 0xffff by software.
var ccitt = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// CRC16 returns the CRC-16 of r as the engine calculates it when CRCCHKSUM was
// seeded with 0xffff.
func CRC16(r io.Reader) (uint32, error) {
	br := bufio.NewReader(r)
	buf := make([]byte, 4096)
	csum := crc16.Init(ccitt)
	for {
		n, err := br.Read(buf)
		csum = crc16.Update(csum, buf[:n], ccitt)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	return uint32(crc16.Complete(csum, ccitt)), nil
}

// CRC32 returns the IEEE 802.3 CRC-32 of r.
func CRC32(r io.Reader) (uint32, error) {
	h := crc32.NewIEEE()
	if _, err := io.Copy(h, r); err != nil {
		return 0, err
	}
	return h.Sum32(), nil
}

// Register32 converts an IEEE 802.3 checksum to what CRCCHKSUM holds after the
// engine finished, which is bit-reversed and complemented.
func Register32(sum uint32) uint32 {
	return bits.Reverse32(^sum)
}
