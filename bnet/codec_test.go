package bnet

import (
	"encoding/base32"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToBase32(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hello", "48656c6c6f21deadbeef", "JBSWY3DPEHPK3PXP"},
		{"uppercase hex", "48656C6C6F21DEADBEEF", "JBSWY3DPEHPK3PXP"},
		{"surrounding whitespace", "  48656c6c6f21deadbeef  ", "JBSWY3DPEHPK3PXP"},
		{"single byte", "ff", "74"},
		{"zeros", "0000", "AAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToBase32(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToBase32Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"odd length", "abc"},
		{"non-hex digit", "zz"},
		{"hex with inner space", "ab cd"},
		{"empty", ""},
		{"whitespace only", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToBase32(tt.input)
			require.Error(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestHexToBase32RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{0x00},
		{0xff, 0x00, 0xff},
		{0xde, 0xad, 0xbe, 0xef},
		[]byte("20-byte-secret-data!"),
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09},
	}
	for _, raw := range inputs {
		encoded, err := HexToBase32(hex.EncodeToString(raw))
		require.NoError(t, err)

		decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
		assert.NotContains(t, encoded, "=")
	}
}

func TestBuildOtpauthURI(t *testing.T) {
	got := BuildOtpauthURI("1234-5678-9012", "JBSWY3DPEHPK3PXP")
	want := "otpauth://totp/Battle.net:1234-5678-9012?secret=JBSWY3DPEHPK3PXP&issuer=Battle.net&digits=8&algorithm=SHA1&period=30"
	assert.Equal(t, want, got)
}
