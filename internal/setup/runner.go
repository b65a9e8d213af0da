package setup

import (
	"fmt"

	"github.com/hbjs97/smartcd/internal/shell"
	"github.com/spf13/afero"
)

// Runner는 wrapper 설치 플로우의 진입점이다.
type Runner struct {
	Fs         afero.Fs
	FormRunner FormRunner
	Home       string
}

// Install은 셸을 결정하고 확인을 받은 뒤 rc 파일에 wrapper를 추가한다.
func (r *Runner) Install(opts InstallOptions) (*InstallResult, error) {
	shellType, err := r.chooseShell(opts.Shell)
	if err != nil {
		return nil, err
	}

	snippet, err := shell.WrapperSnippet(shellType, opts.Bin, opts.ListCommand)
	if err != nil {
		return nil, fmt.Errorf("setup.Install: %w", err)
	}

	result := &InstallResult{Shell: shellType, RCPath: ShellRCPath(r.Home, shellType)}

	installed, err := IsHookInstalled(r.Fs, result.RCPath)
	if err != nil {
		return nil, err
	}
	if installed {
		result.AlreadyInstalled = true
		return result, nil
	}

	if !opts.Yes {
		ok, err := r.FormRunner.RunConfirm(fmt.Sprintf("%s 에 cd wrapper를 추가할까요?", result.RCPath))
		if err != nil {
			return nil, fmt.Errorf("setup.Install: %w", err)
		}
		if !ok {
			result.Declined = true
			return result, nil
		}
	}

	if _, err := InstallShellHook(r.Fs, result.RCPath, snippet); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) chooseShell(explicit string) (string, error) {
	if explicit != "" {
		if !shell.IsSupported(explicit) {
			return "", fmt.Errorf("setup.Install: %w: %s", shell.ErrUnsupportedShell, explicit)
		}
		return explicit, nil
	}

	if detected := DetectShell(); shell.IsSupported(detected) {
		return detected, nil
	}

	selected, err := r.FormRunner.RunShellSelect(shell.Supported)
	if err != nil {
		return "", fmt.Errorf("setup.Install: %w", err)
	}
	if !shell.IsSupported(selected) {
		return "", fmt.Errorf("setup.Install: %w: %s", shell.ErrUnsupportedShell, selected)
	}
	return selected, nil
}
