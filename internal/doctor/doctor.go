package doctor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/smartcd/internal/collation"
	"github.com/hbjs97/smartcd/internal/config"
	"github.com/hbjs97/smartcd/internal/setup"
	"github.com/spf13/afero"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// LookPathFunc는 실행 파일을 PATH에서 찾는다. exec.LookPath와 같은 시그니처다.
type LookPathFunc func(file string) (string, error)

// CheckConfig는 설정 파일을 로드할 수 있는지 확인한다.
func CheckConfig(fs afero.Fs, path string) (DiagResult, *config.Config) {
	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음 — 기본 설정 사용", path),
			Fix:     "smartcd setup 실행",
		}, config.Default()
	}

	cfg, err := config.LoadFS(fs, path)
	if err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s 수정", path),
		}, nil
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: path,
	}, cfg
}

// CheckLocale는 정렬 로케일을 사용할 수 있는지 확인한다.
func CheckLocale(locale string) DiagResult {
	if _, err := collation.New(locale); err != nil {
		return DiagResult{
			Name:    "locale",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("locale = %q 로 설정", collation.DefaultLocale),
		}
	}
	return DiagResult{
		Name:    "locale",
		Status:  StatusOK,
		Message: locale,
	}
}

// CheckListCommand는 cd 후 실행할 명령이 PATH에 있는지 확인한다.
func CheckListCommand(lookPath LookPathFunc, listCmd string) DiagResult {
	fields := strings.Fields(listCmd)
	if len(fields) == 0 {
		return DiagResult{
			Name:    "list_command",
			Status:  StatusOK,
			Message: "비활성화됨",
		}
	}
	if _, err := lookPath(fields[0]); err != nil {
		return DiagResult{
			Name:    "list_command",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", fields[0]),
			Fix:     "list_command 수정 또는 빈 문자열로 비활성화",
		}
	}
	return DiagResult{
		Name:    "list_command",
		Status:  StatusOK,
		Message: listCmd,
	}
}

// CheckShellHook는 셸 rc 파일에 cd wrapper가 설치되어 있는지 확인한다.
func CheckShellHook(fs afero.Fs, shellType, rcPath string) DiagResult {
	if rcPath == "" {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("지원하지 않는 셸: %q", shellType),
			Fix:     "smartcd install --shell zsh|bash|fish",
		}
	}
	installed, err := setup.IsHookInstalled(fs, rcPath)
	if err != nil {
		status := StatusFail
		if errors.Is(err, os.ErrPermission) {
			status = StatusWarn
		}
		return DiagResult{
			Name:    "shell_hook",
			Status:  status,
			Message: err.Error(),
		}
	}
	if !installed {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 에 wrapper 없음", rcPath),
			Fix:     fmt.Sprintf("smartcd install --shell %s", shellType),
		}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusOK,
		Message: rcPath,
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(fs afero.Fs, lookPath LookPathFunc, cfgPath, shellType, rcPath string) []DiagResult {
	cfgResult, cfg := CheckConfig(fs, cfgPath)
	results := []DiagResult{cfgResult}
	if cfg != nil {
		results = append(results,
			CheckLocale(cfg.Locale),
			CheckListCommand(lookPath, cfg.List()),
		)
	}
	results = append(results, CheckShellHook(fs, shellType, rcPath))
	return results
}
