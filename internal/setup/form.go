package setup

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunShellSelect는 셸 선택 UI를 표시한다.
func (h *HuhFormRunner) RunShellSelect(shells []string) (string, error) {
	var selected string
	options := make([]huh.Option[string], len(shells))
	for i, s := range shells {
		options[i] = huh.NewOption(s, s)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("셸을 선택하세요").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunShellSelect: %w", err)
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}
