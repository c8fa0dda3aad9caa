package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/buildkite/shellwords"

	"github.com/clktmr/samd/tools/crc"
	"github.com/clktmr/samd/tools/dump"
)

const usageString = `dmacgo is a host tool for inspecting SAM D DMA controller state.

Usage:

	%s <command> [arguments]

The commands are:

	dump     decode descriptor tables and chains from a memory dump
	crc      compute the checksum the DMAC CRC engine yields for a file

Flags in $DMACGO_FLAGS are inserted before the command's arguments.
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	args, err := withEnvFlags(flag.Args(), os.Getenv("DMACGO_FLAGS"))
	if err != nil {
		log.Fatalln("DMACGO_FLAGS:", err)
	}

	switch args[0] {
	case "dump":
		dump.Main(args)
	case "crc":
		crc.Main(args)
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", args[0])
		flag.Usage()
		os.Exit(1)
	}
}

// withEnvFlags inserts the shell-quoted flags in env after the command name.
func withEnvFlags(args []string, env string) ([]string, error) {
	extra, err := shellwords.Split(env)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return args, nil
	}
	ret := make([]string, 0, len(args)+len(extra))
	ret = append(ret, args[0])
	ret = append(ret, extra...)
	return append(ret, args[1:]...), nil
}
