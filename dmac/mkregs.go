//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

var regsTemplate = `{{ if .Tag }}//go:build {{ .Tag }}

{{ end }}package dmac
{{ range .Regs }}
// {{ .Type }} is the {{ .Doc }} register {{ .Name }}, {{ .Width }}-bit {{ if .RW }}read-write{{ else }}read-only{{ end }}.
type {{ .Type }} struct{ {{ if .RW }}RW{{ else }}RO{{ end }}[{{ .Item }}] }
{{ end }}
{{ with .Doc }}// {{ . }}
{{ end }}type {{ .Struct }} struct {
{{- range .Regs }}
	{{ .Name }} {{ .Type }}
{{- end }}
}

func new{{ .Ctor }}(base uintptr) {{ .Struct }} {
	return {{ .Struct }}{
{{- range .Regs }}
		{{ .Name }}: {{ .Type }}{ {{- if .RW }}rw{{ else }}ro{{ end }}[{{ .Item }}](base + {{ printf "0x%02x" .Offset }})},
{{- end }}
	}
}
`

type reg struct {
	Name, Type, Item, Doc string
	Width                 int
	Offset                uint
	RW                    bool
}

type block struct {
	File, Tag    string
	Struct, Ctor string
	Doc          string
	Regs         []reg
}

func r(name, typ, item string, width int, offset uint, rw bool, doc string) reg {
	return reg{name, typ, item, doc, width, offset, rw}
}

const RO, RW = false, true

var blocks = []block{
	{
		File: "regs_gen.go", Struct: "commonRegisters", Ctor: "CommonRegisters",
		Regs: []reg{
			r("CTRL", "Ctrl", "CtrlFlags", 16, 0x00, RW, "control"),
			r("CRCCTRL", "CRCCtrl", "CRCCtrlFlags", 16, 0x02, RW, "CRC control"),
			r("CRCDATAIN", "CRCDataIn", "uint32", 32, 0x04, RW, "CRC data input"),
			r("CRCCHKSUM", "CRCChecksum", "uint32", 32, 0x08, RW, "CRC checksum"),
			r("CRCSTATUS", "CRCStatus", "CRCStatusFlags", 8, 0x0c, RW, "CRC status"),
			r("DBGCTRL", "DebugCtrl", "uint8", 8, 0x0d, RW, "debug control"),
			r("SWTRIGCTRL", "SwTrigCtrl", "uint32", 32, 0x10, RW, "software trigger control"),
			r("PRICTRL0", "PriCtrl0", "uint32", 32, 0x14, RW, "priority control 0"),
			r("INTPEND", "IntPend", "IntPendFlags", 16, 0x20, RW, "interrupt pending"),
			r("INTSTATUS", "IntStatus", "uint32", 32, 0x24, RO, "interrupt status"),
			r("BUSYCH", "BusyCh", "uint32", 32, 0x28, RO, "busy channels"),
			r("PENDCH", "PendCh", "uint32", 32, 0x2c, RO, "pending channels"),
			r("ACTIVE", "Active", "ActiveStatus", 32, 0x30, RO, "active channel and levels"),
			r("BASEADDR", "BaseAddr", "uint32", 32, 0x34, RW, "descriptor memory section base address"),
			r("WRBADDR", "WrbAddr", "uint32", 32, 0x38, RW, "write-back memory section base address"),
		},
	},
	{
		File: "regs_samd21_gen.go", Tag: "!samd51", Struct: "variantRegisters", Ctor: "VariantRegisters",
		Regs: []reg{
			r("QOSCTRL", "QoSCtrl", "uint8", 8, 0x0e, RW, "quality of service control"),
			r("CHID", "ChID", "ChannelID", 8, 0x3f, RW, "channel ID"),
			r("CHCTRLA", "ChCtrlA", "ChannelCtrlA", 8, 0x40, RW, "channel control A"),
			r("CHCTRLB", "ChCtrlB", "ChannelCtrlB", 32, 0x44, RW, "channel control B"),
			r("CHINTENCLR", "ChIntEnClr", "ChannelInt", 8, 0x4c, RW, "channel interrupt enable clear"),
			r("CHINTENSET", "ChIntEnSet", "ChannelInt", 8, 0x4d, RW, "channel interrupt enable set"),
			r("CHINTFLAG", "ChIntFlag", "ChannelInt", 8, 0x4e, RW, "channel interrupt flag status and clear"),
			r("CHSTATUS", "ChStatus", "ChannelStatus", 8, 0x4f, RO, "channel status"),
		},
	},
	{
		File: "regs_samd51_gen.go", Tag: "samd51", Struct: "ChannelRegisters", Ctor: "ChannelRegisters",
		Doc:  "ChannelRegisters is the register block of a single channel.",
		Regs: []reg{
			r("CHCTRLA", "ChCtrlA", "ChannelCtrlA", 32, 0x00, RW, "channel control A"),
			r("CHCTRLB", "ChCtrlB", "ChannelCtrlB", 8, 0x04, RW, "channel control B"),
			r("CHPRILVL", "ChPriLvl", "PriorityLevel", 8, 0x05, RW, "channel priority level"),
			r("CHEVCTRL", "ChEvCtrl", "ChannelEvCtrl", 8, 0x06, RW, "channel event control"),
			r("CHINTENCLR", "ChIntEnClr", "ChannelInt", 8, 0x0c, RW, "channel interrupt enable clear"),
			r("CHINTENSET", "ChIntEnSet", "ChannelInt", 8, 0x0d, RW, "channel interrupt enable set"),
			r("CHINTFLAG", "ChIntFlag", "ChannelInt", 8, 0x0e, RW, "channel interrupt flag status and clear"),
			r("CHSTATUS", "ChStatus", "ChannelStatus", 8, 0x0f, RO, "channel status"),
		},
	},
}

func main() {
	log.Default().SetFlags(log.Lshortfile)

	tmpl, err := template.New("regsTemplate").Parse(regsTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	for _, b := range blocks {
		seen := make(map[uint]string)
		for _, reg := range b.Regs {
			if reg.Offset%uint(reg.Width/8) != 0 {
				log.Fatalln("misaligned register:", reg.Name)
			}
			if other, ok := seen[reg.Offset]; ok {
				log.Fatalln("overlapping registers:", reg.Name, other)
			}
			seen[reg.Offset] = reg.Name
		}

		source := bytes.NewBuffer(nil)
		err = tmpl.Execute(source, b)
		if err != nil {
			log.Fatalln(err)
		}

		formattedSource, err := format.Source(source.Bytes())
		if err != nil {
			fmt.Fprint(os.Stderr, source.String())
			log.Fatalln(err)
		}
		err = os.WriteFile(b.File, formattedSource, 0644)
		if err != nil {
			log.Fatalln(err)
		}
	}
}
