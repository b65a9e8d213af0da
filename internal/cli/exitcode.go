package cli

import (
	"errors"
)

// ExitCode는 smartcd의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitResolveFail는 후보 디렉토리 조회 실패다. wrapper는 아무것도 하지 않는다.
	ExitResolveFail ExitCode = 2
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 3
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrUnreadable):
		return ExitResolveFail
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}

// Silent는 stderr에 메시지를 남기지 않아야 하는 종료 코드인지 반환한다.
func (c ExitCode) Silent() bool {
	return c == ExitSuccess || c == ExitResolveFail
}
