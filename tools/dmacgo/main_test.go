package main

import (
	"slices"
	"testing"
)

func TestWithEnvFlags(t *testing.T) {
	tests := []struct {
		args []string
		env  string
		want []string
	}{
		{[]string{"dump", "a.bin"}, "", []string{"dump", "a.bin"}},
		{[]string{"dump", "a.bin"}, "-org 0x20000000", []string{"dump", "-org", "0x20000000", "a.bin"}},
		{[]string{"crc"}, `-poly crc32 -register`, []string{"crc", "-poly", "crc32", "-register"}},
		{[]string{"dump", "x"}, `-base "0x2000 0000"`, []string{"dump", "-base", "0x2000 0000", "x"}},
	}
	for _, tc := range tests {
		got, err := withEnvFlags(tc.args, tc.env)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, tc.want) {
			t.Errorf("withEnvFlags(%q, %q) = %q, expected %q", tc.args, tc.env, got, tc.want)
		}
	}
}
