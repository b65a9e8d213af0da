package shell

import (
	"errors"
	"fmt"
	"strings"
)

// Marker는 rc 파일에 설치된 wrapper를 식별하는 주석이다.
const Marker = "smartcd shell integration"

// ErrUnsupportedShell는 wrapper를 생성할 수 없는 셸일 때 반환된다.
var ErrUnsupportedShell = errors.New("지원하지 않는 셸")

// Supported는 wrapper를 생성할 수 있는 셸 목록이다.
var Supported = []string{"bash", "zsh", "fish"}

// IsSupported는 shellType의 wrapper를 생성할 수 있는지 반환한다.
func IsSupported(shellType string) bool {
	for _, s := range Supported {
		if s == shellType {
			return true
		}
	}
	return false
}

// WrapperSnippet은 builtin cd를 감싸는 cd 함수 정의를 반환한다.
// bin은 smartcd 실행 파일, listCmd는 cd 성공 후 실행할 명령이며 비어 있으면 생략한다.
func WrapperSnippet(shellType, bin, listCmd string) (string, error) {
	listCmd = strings.TrimSpace(listCmd)

	switch shellType {
	case "bash", "zsh":
		then := ""
		if listCmd != "" {
			then = " && " + listCmd
		}
		return fmt.Sprintf(`# %s (%s)
cd() {
  local argvs
  argvs=$(%s resolve -- "$@") || return
  eval "builtin cd $argvs%s"
}
`, Marker, shellType, bin, then), nil
	case "fish":
		then := ""
		if listCmd != "" {
			then = "\n  and " + listCmd
		}
		return fmt.Sprintf(`# %s (fish)
function cd --wraps cd
  set -l argvs (%s resolve -- $argv); or return
  eval builtin cd $argvs%s
end
`, Marker, bin, then), nil
	default:
		return "", fmt.Errorf("shell.WrapperSnippet: %w: %s", ErrUnsupportedShell, shellType)
	}
}
