package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		out  string
		want result
	}{
		{"=== RUN TestTable\n--- PASS: TestTable\r\nPASS\r\n", passed},
		{"=== RUN TestTable\nFAIL\nPASS\n", failed},
		{"panic: dmac: channel ID must be less than 32\n", failed},
		{"garbage\n", failed},
		{"", failed},
	}
	for _, tc := range tests {
		var w bytes.Buffer
		res := make(chan result, 1)
		scan(strings.NewReader(tc.out), &w, res)
		if got := <-res; got != tc.want {
			t.Errorf("%q: got %v, expected %v", tc.out, got, tc.want)
		}
		if w.String() != tc.out {
			t.Errorf("output not forwarded: %q", w.String())
		}
	}
}
