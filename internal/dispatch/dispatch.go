// Package dispatch maps the arguments of a wrapped cd call onto resolver
// calls and builds the single line the shell wrapper evaluates.
package dispatch

import (
	"fmt"
	"strings"
)

// PathResolver는 하나의 토큰을 cd 대상 경로로 변환한다.
type PathResolver interface {
	Resolve(token string) (string, error)
}

// Format은 인자 개수에 따라 출력할 한 줄을 만든다.
// 인자가 없으면 ok는 false이며 아무것도 출력하지 않아야 한다.
// 네 번째 이후의 인자는 무시한다.
func Format(args []string, r PathResolver) (line string, ok bool, err error) {
	switch len(args) {
	case 0:
		return "", false, nil
	case 1:
		p, err := r.Resolve(args[0])
		if err != nil {
			return "", false, fmt.Errorf("dispatch.Format: %w", err)
		}
		return p, true, nil
	case 2:
		// cd OLD NEW 형태는 셸 builtin의 치환 의미를 그대로 둔다.
		if !strings.HasPrefix(args[0], "-") {
			return args[0] + " " + args[1], true, nil
		}
		p, err := r.Resolve(args[1])
		if err != nil {
			return "", false, fmt.Errorf("dispatch.Format: %w", err)
		}
		return args[0] + " " + p, true, nil
	default:
		return strings.Join(args[:3], " "), true, nil
	}
}
