package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/smartcd/internal/shell"
	"github.com/spf13/afero"
)

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// ShellRCPath는 셸별 RC 파일 경로를 반환한다.
func ShellRCPath(home, shellType string) string {
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "smartcd.fish")
	default:
		return ""
	}
}

// IsHookInstalled는 rc 파일에 wrapper가 이미 있는지 확인한다.
func IsHookInstalled(fs afero.Fs, rcPath string) (bool, error) {
	existing, err := afero.ReadFile(fs, rcPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("setup.IsHookInstalled: %w", err)
	}
	return strings.Contains(string(existing), shell.Marker), nil
}

// InstallShellHook은 셸 RC 파일에 snippet을 추가한다.
// 이미 설치되어 있으면 건너뛰고 false를 반환한다.
func InstallShellHook(fs afero.Fs, rcPath, snippet string) (bool, error) {
	installed, err := IsHookInstalled(fs, rcPath)
	if err != nil {
		return false, err
	}
	if installed {
		return false, nil
	}

	if err := fs.MkdirAll(filepath.Dir(rcPath), 0700); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	f, err := fs.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}

	return true, nil
}
