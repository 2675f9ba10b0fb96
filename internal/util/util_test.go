package util

import (
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     string
		expected int64
		wantErr  bool
	}{
		{name: "plain number", size: "512", expected: 512},
		{name: "kilobytes", size: "100KB", expected: 100 * 1024},
		{name: "megabytes with space", size: "5 MB", expected: 5 * 1024 * 1024},
		{name: "lower case short unit", size: "2m", expected: 2 * 1024 * 1024},
		{name: "bytes suffix", size: "64B", expected: 64},
		{name: "empty", size: " ", wantErr: true},
		{name: "garbage", size: "lots", wantErr: true},
		{name: "negative", size: "-1KB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBytes(tt.size)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBytes(%q) expected error", tt.size)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseBytes(%q) unexpected error: %v", tt.size, err)
			}
			if got != tt.expected {
				t.Fatalf("ParseBytes(%q) = %d, want %d", tt.size, got, tt.expected)
			}
		})
	}
}

func TestContentChecksum(t *testing.T) {
	t.Parallel()

	got, err := ContentChecksum(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("ContentChecksum returned error: %v", err)
	}

	const expected = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != expected {
		t.Fatalf("ContentChecksum = %s, want %s", got, expected)
	}
}
