package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func runCommand(args ...string) (string, error) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAddressCommand(t *testing.T) {
	out, err := runCommand("address", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	if err != nil {
		t.Fatalf("address command error = %v", err)
	}

	for _, want := range []string{
		"Checksum: 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"Short:    0x5aae...eaed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("address command output %q is missing %q", out, want)
		}
	}
}

func TestAddressCommandInvalid(t *testing.T) {
	tests := []string{
		"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1bea",
		"0xZZaeb6053f3e94c9b9a09f33669435e7ef1beaed",
	}

	for _, address := range tests {
		if _, err := runCommand("address", address); err == nil {
			t.Errorf("address command accepted %q", address)
		}
	}
}
