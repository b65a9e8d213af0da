// Package logging configures the diagnostic logger. Output always goes to
// the given writer (stderr in production) so stdout stays reserved for the
// line the shell wrapper evaluates.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New는 w로 출력하는 콘솔 로거를 생성한다. verbose이면 debug 레벨, 아니면 warn 레벨이다.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	return zerolog.New(out).Level(level).With().Str("app", "smartcd").Logger()
}
