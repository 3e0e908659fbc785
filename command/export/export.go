// Package export implements the command that turns a Battle.net
// authenticator into an otpauth URI.
package export

import (
	"bufio"
	"bytes"
	"fmt"
	"image/png"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bnet-tools/bnet-auth-export/bnet"
	"github.com/bnet-tools/bnet-auth-export/command"
	"github.com/bnet-tools/bnet-auth-export/config"
	"github.com/bnet-tools/bnet-auth-export/errs"
	"github.com/bnet-tools/bnet-auth-export/ui"
	"github.com/bnet-tools/bnet-auth-export/utils"
)

func init() {
	cmd := cli.Command{
		Name:   "export",
		Action: command.ActionFunc(exportAction),
		Usage:  "export a Battle.net authenticator as an otpauth URI",
		UsageText: `**bnet-auth-export export**
[**--token**=<session-token>] [**--serial**=<serial>] [**--restore-code**=<code>]
[**--qr**=<file>] [**--code**] [**--bare**] [**--timeout**=<duration>]`,
		Description: `**bnet-auth-export export** exchanges a Battle.net web session token for an
OAuth bearer token, restores the authenticator device secret with it, and
prints an otpauth URI that imports into any TOTP app (Google Authenticator,
Authy, 1Password, ...).

The session token is the value of the ST cookie on battle.net after logging
in. The serial and restore code are shown in the Battle.net authenticator
settings. Inputs not given as flags are prompted for; the restore code is
never echoed.

Battle.net codes use SHA1, 8 digits and a 30 second period. Make sure your
app imports all three parameters or the generated codes will not match.

## EXAMPLES

Run the export interactively:
'''
$ bnet-auth-export export
'''

Write a QR code to scan with the new app:
'''
$ bnet-auth-export export --qr authenticator.png
'''

Print only the otpauth URI:
'''
$ bnet-auth-export export --bare
'''

Print a current passcode to compare against the old authenticator:
'''
$ bnet-auth-export export --code
'''`,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "token, t",
				Usage: `The web session <token> from battle.net, with or without the "ST=" prefix.`,
			},
			cli.StringFlag{
				Name:  "serial, s",
				Usage: `The authenticator <serial> (e.g. US-1234-5678-9012).`,
			},
			cli.StringFlag{
				Name: "restore-code",
				Usage: `The authenticator restore <code>. Prefer the prompt over this flag so the
code does not end up in the shell history.`,
			},
			cli.StringFlag{
				Name:  "qr",
				Usage: `Write a QR code of the otpauth URI to the specified <file>.`,
			},
			cli.BoolFlag{
				Name:  "code",
				Usage: "Also print a current passcode generated from the restored secret.",
			},
			cli.BoolFlag{
				Name:  "bare",
				Usage: "Only output the otpauth URI.",
			},
			cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP <timeout> for each of the two Battle.net requests.",
				Value: bnet.DefaultTimeout,
			},
			cli.StringFlag{
				Name:   "sso-endpoint",
				Usage:  "Battle.net SSO token exchange <url>.",
				Hidden: true,
			},
			cli.StringFlag{
				Name:   "restore-endpoint",
				Usage:  "Authenticator REST API base <url>.",
				Hidden: true,
			},
			cli.BoolFlag{
				Name:  "force, f",
				Usage: "Overwrite the '--qr' file if it exists.",
			},
		},
	}

	command.Register(cmd)
}

func exportAction(ctx *cli.Context) error {
	if ctx.Bool("bare") && ctx.Bool("code") {
		return errs.MutuallyExclusiveFlags(ctx, "bare", "code")
	}
	if ctx.Duration("timeout") <= 0 {
		return errs.InvalidFlagValue(ctx, "timeout", ctx.Duration("timeout").String(), "")
	}

	sessionToken, serial, restoreCode, err := gatherInputs(ctx)
	if err != nil {
		return err
	}

	// Reject empty inputs before anything goes on the wire.
	switch {
	case strings.TrimSpace(sessionToken) == "":
		return errs.NewError("session token is required")
	case strings.TrimSpace(serial) == "":
		return errs.NewError("authenticator serial is required")
	case strings.TrimSpace(restoreCode) == "":
		return errs.NewError("restore code is required")
	}

	client := bnet.NewClient(ctx.Duration("timeout"))
	client.UserAgent = config.UserAgent()
	if v := ctx.String("sso-endpoint"); v != "" {
		client.SSOEndpoint = v
	}
	if v := ctx.String("restore-endpoint"); v != "" {
		client.RestoreBaseURL = v
	}

	session, err := client.ExchangeSessionToken(sessionToken)
	if err != nil {
		return err
	}

	deviceSecret, err := session.RestoreDeviceSecret(serial, restoreCode)
	if err != nil {
		return err
	}

	secret, err := bnet.HexToBase32(deviceSecret)
	if err != nil {
		return err
	}
	uri := bnet.BuildOtpauthURI(serial, secret)

	// Round-trip through the otp library so a URI we cannot parse ourselves
	// is never handed to the user.
	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		return errors.Wrap(err, "error parsing generated otpauth URI")
	}

	if filename := ctx.String("qr"); filename != "" {
		var buf bytes.Buffer
		img, err := key.Image(200, 200)
		if err != nil {
			return errors.Wrap(err, "error generating QR code")
		}
		if err := png.Encode(&buf, img); err != nil {
			return errors.Wrap(err, "error encoding QR code")
		}
		if err := utils.WriteFile(filename, buf.Bytes(), 0600); err != nil {
			return errs.FileError(err, filename)
		}
	}

	if ctx.Bool("bare") {
		fmt.Println(uri)
		return nil
	}

	fmt.Println()
	fmt.Println("Battle.net export succeeded")
	fmt.Println("Serial:", serial)
	fmt.Printf("TOTP settings: %s / %d digits / %ds\n", bnet.Algorithm, bnet.Digits, bnet.Period)
	fmt.Println()
	fmt.Println("otpauth URI (paste into your authenticator app):")
	fmt.Println(uri)

	if ctx.Bool("code") {
		passcode, err := totp.GenerateCodeCustom(key.Secret(), time.Now(), totp.ValidateOpts{
			Period:    bnet.Period,
			Digits:    otp.DigitsEight,
			Algorithm: otp.AlgorithmSHA1,
		})
		if err != nil {
			return errors.Wrap(err, "error generating passcode")
		}
		fmt.Println()
		fmt.Println("Current passcode:", passcode)
	}

	return nil
}

// gatherInputs returns the session token, serial and restore code from the
// flags, prompting for the missing ones. With stdin piped the missing values
// are read from it one per line instead, sharing a single scanner so that no
// line is lost between reads.
func gatherInputs(ctx *cli.Context) (sessionToken, serial, restoreCode string, err error) {
	interactive := terminal.IsTerminal(syscall.Stdin)

	var scanner *bufio.Scanner
	readLine := func() (string, error) {
		if scanner == nil {
			scanner = bufio.NewScanner(os.Stdin)
		}
		if scanner.Scan() {
			return strings.TrimSpace(scanner.Text()), nil
		}
		if err := scanner.Err(); err != nil {
			return "", errors.Wrap(err, "error reading stdin")
		}
		return "", nil
	}

	sessionToken = ctx.String("token")
	if sessionToken == "" {
		if interactive {
			sessionToken, err = ui.Prompt("Session Token (ST=...)", ui.WithValidateNotEmpty())
		} else {
			sessionToken, err = readLine()
		}
		if err != nil {
			return "", "", "", err
		}
	}

	serial = ctx.String("serial")
	if serial == "" {
		if interactive {
			serial, err = ui.Prompt("Authenticator Serial", ui.WithValidateNotEmpty())
		} else {
			serial, err = readLine()
		}
		if err != nil {
			return "", "", "", err
		}
	}

	restoreCode = ctx.String("restore-code")
	if restoreCode == "" {
		if interactive {
			b, err := utils.ReadPassword("Restore Code: ")
			if err != nil {
				return "", "", "", err
			}
			restoreCode = strings.TrimSpace(string(b))
		} else {
			restoreCode, err = readLine()
			if err != nil {
				return "", "", "", err
			}
		}
	}

	return sessionToken, serial, restoreCode, nil
}
