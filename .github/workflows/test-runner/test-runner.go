// test-runner runs an on-target test command, e.g. "tinygo flash -monitor", and
// scans its serial output for the test result. The command is interrupted once
// a result was seen or the timeout expired. The exit code is 0 if all tests
// passed, otherwise 1.
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

var timeout = flag.Duration("timeout", 2*time.Minute, "give up if no result was seen")

type result int

const (
	pending result = iota
	passed
	failed
)

// classify returns the test result a line of output reports, if any.
func classify(line string) result {
	line = strings.TrimRight(line, "\r")
	switch {
	case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
		return failed
	case line == "FAIL":
		return failed
	case line == "PASS":
		return passed
	}
	return pending
}

// scan copies r to w line by line and sends the first result found on res.
func scan(r io.Reader, w io.Writer, res chan<- result) {
	scanner := bufio.NewScanner(r)
	sent := false
	for scanner.Scan() {
		io.WriteString(w, scanner.Text()+"\n")
		if sent {
			continue
		}
		if v := classify(scanner.Text()); v != pending {
			res <- v
			sent = true
		}
	}
	if !sent {
		res <- failed
	}
}

func main() {
	log.Default().SetFlags(0)
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatal("usage: test-runner [-timeout d] command [args...]")
	}

	cmd := exec.Command(flag.Arg(0), flag.Args()[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Fatal("open stdout:", err)
	}
	if err = cmd.Start(); err != nil {
		log.Fatal("start command:", err)
	}

	res := make(chan result, 1)
	go scan(stdout, os.Stdout, res)

	code := 1
	select {
	case v := <-res:
		if v == passed {
			code = 0
		}
		time.Sleep(500 * time.Millisecond)
	case <-time.After(*timeout):
		log.Println("test-runner: timeout")
	}
	syscall.Kill(-cmd.Process.Pid, syscall.SIGINT)
	cmd.Wait()
	os.Exit(code)
}
