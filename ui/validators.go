package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// NotEmpty is a validation function that checks that the prompted string is not
// empty.
func NotEmpty() promptui.ValidateFunc {
	return func(s string) error {
		if len(strings.TrimSpace(s)) == 0 {
			return fmt.Errorf("value is empty")
		}
		return nil
	}
}
