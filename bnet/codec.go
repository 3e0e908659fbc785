package bnet

import (
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// TOTP parameters used by Battle.net authenticators. Blizzard generates
// 8 digit SHA1 codes on the standard 30 second period; downstream apps need
// these exact values to produce matching codes.
const (
	Issuer    = "Battle.net"
	Digits    = 8
	Algorithm = "SHA1"
	Period    = 30
)

// TOTP apps want unpadded uppercase Base32 and are inconsistent about
// accepting anything else.
var base32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

// HexToBase32 decodes the hex device secret and re-encodes it as unpadded
// uppercase Base32. Hex digits are accepted in either case.
func HexToBase32(hexSecret string) (string, error) {
	b, err := hex.DecodeString(strings.TrimSpace(hexSecret))
	if err != nil {
		return "", errors.Wrap(err, "deviceSecret is not valid hex")
	}
	if len(b) == 0 {
		return "", errors.New("deviceSecret is empty")
	}
	return base32NoPad.EncodeToString(b), nil
}

// BuildOtpauthURI renders the key URI for the given authenticator serial and
// Base32 secret. See
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format.
func BuildOtpauthURI(serial, base32Secret string) string {
	return fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s&digits=%d&algorithm=%s&period=%d",
		Issuer, serial, base32Secret, Issuer, Digits, Algorithm, Period)
}
