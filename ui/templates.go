package ui

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// PromptTemplates is the default style for a prompt.
func PromptTemplates() *promptui.PromptTemplates {
	bold := promptui.Styler(promptui.FGBold)
	return &promptui.PromptTemplates{
		Prompt:  fmt.Sprintf("%s {{ . | bold }}%s ", promptui.IconInitial, bold(":")),
		Success: fmt.Sprintf("%s {{ . | bold }}%s ", bold(promptui.IconGood), bold(":")),
		Valid:   fmt.Sprintf("%s {{ . | bold }}%s ", bold(promptui.IconGood), bold(":")),
		Invalid: fmt.Sprintf("%s {{ . | bold }}%s ", bold(promptui.IconBad), bold(":")),
	}
}
