package cli

import (
	"github.com/hbjs97/smartcd/internal/config"
	"github.com/hbjs97/smartcd/internal/resolver"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrUnreadable는 후보 디렉토리를 읽을 수 없을 때의 sentinel error다.
	ErrUnreadable = resolver.ErrUnreadable
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
