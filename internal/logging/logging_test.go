package logging_test

import (
	"bytes"
	"testing"

	"github.com/hbjs97/smartcd/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNew_DebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, false)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, true)

	log.Debug().Str("token", "foo").Msg("resolving")
	out := buf.String()
	assert.Contains(t, out, "resolving")
	assert.Contains(t, out, "token=foo")
	assert.Contains(t, out, "app=smartcd")
}
