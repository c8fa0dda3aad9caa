// Package dump decodes DMAC descriptor tables from a raw memory dump, e.g. an
// SRAM image read by a debugger.
package dump

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/clktmr/samd/dmac"
)

const usageString = `Descriptor table decoder.

Usage: %s [flags] <image>

Decodes the descriptor table at -base and follows every channel's chain.

`

var (
	flags = flag.NewFlagSet("dump", flag.ExitOnError)

	org      = flags.String("org", "0x20000000", "bus address of the image's first byte")
	base     = flags.String("base", "", "BASEADDR register value")
	wrb      = flags.String("wrb", "", "WRBADDR register value, prints write-back descriptors")
	channels = flags.Int("channels", 1, "number of table slots")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "dump")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 || *base == "" {
		flags.Usage()
		os.Exit(1)
	}

	var cfg Config
	var err error
	if cfg.Org, err = parseAddr(*org); err != nil {
		log.Fatalln("-org:", err)
	}
	if cfg.Base, err = parseAddr(*base); err != nil {
		log.Fatalln("-base:", err)
	}
	if *wrb != "" {
		if cfg.Writeback, err = parseAddr(*wrb); err != nil {
			log.Fatalln("-wrb:", err)
		}
	}
	cfg.Channels = *channels

	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}

	err = Decode(os.Stdout, NewImage(cfg.Org, data), cfg)
	if err != nil {
		log.Fatalln(err)
	}
}

func parseAddr(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 0, 32)
	return uint32(v), err
}

// Config describes where the tables are located.
type Config struct {
	Org       uint32 // address of the image's first byte
	Base      uint32 // BASEADDR
	Writeback uint32 // WRBADDR, zero to skip
	Channels  int
}

var (
	ErrOutside   = errors.New("address outside of image")
	ErrUnaligned = errors.New("unaligned descriptor address")
)

// Image is a memory dump. Descriptors decoded from it are cached, so a
// descriptor has the same identity every time its address is resolved.
type Image struct {
	org   uint32
	data  []byte
	cache map[uint32]*dmac.Descriptor
}

func NewImage(org uint32, data []byte) *Image {
	return &Image{org, data, make(map[uint32]*dmac.Descriptor)}
}

// Descriptor decodes the descriptor at bus address addr.
func (img *Image) Descriptor(addr uint32) (*dmac.Descriptor, error) {
	if d, ok := img.cache[addr]; ok {
		return d, nil
	}
	if addr%dmac.DescriptorAlign != 0 {
		return nil, fmt.Errorf("%#08x: %w", addr, ErrUnaligned)
	}
	if addr < img.org || uint64(addr-img.org)+dmac.DescriptorSize > uint64(len(img.data)) {
		return nil, fmt.Errorf("%#08x: %w", addr, ErrOutside)
	}
	d := new(dmac.Descriptor)
	if err := d.UnmarshalBinary(img.data[addr-img.org:]); err != nil {
		return nil, err
	}
	img.cache[addr] = d
	return d, nil
}

// resolve is the resolver passed to dmac.Walk. The first unresolvable address
// is recorded in err.
func (img *Image) resolve(err *error) func(uint32) *dmac.Descriptor {
	return func(addr uint32) *dmac.Descriptor {
		d, e := img.Descriptor(addr)
		if e != nil && *err == nil {
			*err = e
		}
		return d
	}
}

// Decode writes a table of every channel's descriptor chain to w.
func Decode(w io.Writer, img *Image, cfg Config) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintln(tw, "CH\t#\tADDR\tBTCTRL\tBEATS\tSRC\tDST\tNEXT\t")

	for ch := range cfg.Channels {
		addr := cfg.Base + uint32(ch)*dmac.DescriptorSize
		head, err := img.Descriptor(addr)
		if err != nil {
			return fmt.Errorf("channel %d: %w", ch, err)
		}
		if !head.Valid() {
			fmt.Fprintf(tw, "%d\t-\t%#08x\t(idle)\t\t\t\t\t\n", ch, addr)
			continue
		}

		var werr error
		n := 0
		for d := range dmac.Walk(head, img.resolve(&werr)) {
			fmt.Fprintf(tw, "%d\t%d\t%#08x\t%s\t%d\t%#08x\t%#08x\t%s\t\n",
				ch, n, addr, Control(d.BTCTRL), d.BTCNT, d.SRCADDR, d.DSTADDR, next(d))
			addr = d.DESCADDR // Walk follows DESCADDR
			n++
		}
		if werr != nil {
			fmt.Fprintf(tw, "%d\t%d\t\t(%v)\t\t\t\t\t\n", ch, n, werr)
		}

		if cfg.Writeback != 0 {
			live, err := img.Descriptor(cfg.Writeback + uint32(ch)*dmac.DescriptorSize)
			if err != nil {
				return fmt.Errorf("channel %d write-back: %w", ch, err)
			}
			fmt.Fprintf(tw, "%d\twb\t\t%s\t%d\t%#08x\t%#08x\t%s\t\n",
				ch, Control(live.BTCTRL), live.BTCNT, live.SRCADDR, live.DSTADDR, next(live))
		}
	}
	return tw.Flush()
}

func next(d *dmac.Descriptor) string {
	if d.Last() {
		return "end"
	}
	return fmt.Sprintf("%#08x", d.DESCADDR)
}

// Control formats the BTCTRL bits.
func Control(c dmac.TransferControl) string {
	var s []string
	if c&dmac.VALID != 0 {
		s = append(s, "VALID")
	}
	s = append(s, fmt.Sprintf("BEAT%d", c.BeatSize()*8))
	if c&dmac.SRCINC != 0 {
		s = append(s, "SRCINC")
	}
	if c&dmac.DSTINC != 0 {
		s = append(s, "DSTINC")
	}
	if step := c.StepShift(); step != 0 {
		target := "DST"
		if c&dmac.STEPSEL != 0 {
			target = "SRC"
		}
		s = append(s, fmt.Sprintf("STEP%s=X%d", target, 1<<step))
	}
	switch c & dmac.BlockActMask {
	case dmac.BlockActInt:
		s = append(s, "INT")
	case dmac.BlockActSuspend:
		s = append(s, "SUSPEND")
	case dmac.BlockActBoth:
		s = append(s, "SUSPEND|INT")
	}
	switch c & dmac.EVOSELMask {
	case dmac.EVOSELBlock:
		s = append(s, "EVBLOCK")
	case dmac.EVOSELBeat:
		s = append(s, "EVBEAT")
	}
	return strings.Join(s, ",")
}
