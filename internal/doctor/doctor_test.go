package doctor_test

import (
	"errors"
	"testing"

	"github.com/hbjs97/smartcd/internal/doctor"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookPath(found ...string) doctor.LookPathFunc {
	return func(file string) (string, error) {
		for _, f := range found {
			if f == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestCheckConfig_Missing(t *testing.T) {
	result, cfg := doctor.CheckConfig(afero.NewOsFs(), "/nonexistent/config.toml")
	assert.Equal(t, doctor.StatusWarn, result.Status)
	assert.NotEmpty(t, result.Fix)
	require.NotNil(t, cfg)
	assert.Equal(t, "en_US.UTF-8", cfg.Locale)
}

func TestCheckConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.toml"
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), path, []byte("version = 9"), 0600))

	result, cfg := doctor.CheckConfig(afero.NewOsFs(), path)
	assert.Equal(t, doctor.StatusFail, result.Status)
	assert.Nil(t, cfg)
}

func TestCheckConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.toml"
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), path, []byte(`locale = "C"`), 0600))

	result, cfg := doctor.CheckConfig(afero.NewOsFs(), path)
	assert.Equal(t, doctor.StatusOK, result.Status)
	require.NotNil(t, cfg)
	assert.Equal(t, "C", cfg.Locale)
}

func TestCheckLocale(t *testing.T) {
	assert.Equal(t, doctor.StatusOK, doctor.CheckLocale("en_US.UTF-8").Status)
	assert.Equal(t, doctor.StatusOK, doctor.CheckLocale("POSIX").Status)

	bad := doctor.CheckLocale("!!")
	assert.Equal(t, doctor.StatusFail, bad.Status)
	assert.NotEmpty(t, bad.Fix)
}

func TestCheckListCommand(t *testing.T) {
	lookPath := fakeLookPath("ls")

	assert.Equal(t, doctor.StatusOK, doctor.CheckListCommand(lookPath, "ls --color=tty").Status)
	assert.Equal(t, doctor.StatusOK, doctor.CheckListCommand(lookPath, "").Status)

	missing := doctor.CheckListCommand(lookPath, "eza -l")
	assert.Equal(t, doctor.StatusFail, missing.Status)
	assert.Contains(t, missing.Message, "eza")
}

func TestCheckShellHook(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/u/.zshrc", []byte("# smartcd shell integration (zsh)\n"), 0600))
	require.NoError(t, afero.WriteFile(fs, "/home/u/.bashrc", []byte("export PATH\n"), 0600))

	assert.Equal(t, doctor.StatusOK, doctor.CheckShellHook(fs, "zsh", "/home/u/.zshrc").Status)

	notInstalled := doctor.CheckShellHook(fs, "bash", "/home/u/.bashrc")
	assert.Equal(t, doctor.StatusWarn, notInstalled.Status)
	assert.Equal(t, "smartcd install --shell bash", notInstalled.Fix)

	assert.Equal(t, doctor.StatusWarn, doctor.CheckShellHook(fs, "tcsh", "").Status)
}

func TestRunAll_SkipsConfigDependentChecksOnFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.toml", []byte("version = 9"), 0600))

	results := doctor.RunAll(fs, fakeLookPath("ls"), "/cfg/config.toml", "zsh", "/home/u/.zshrc")
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"config", "shell_hook"}, names)
}
