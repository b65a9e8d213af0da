package setup

import (
	"errors"
	"testing"

	"github.com/hbjs97/smartcd/internal/shell"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFormRunner는 테스트용 FormRunner다.
type mockFormRunner struct {
	shell      string
	shellErr   error
	confirm    bool
	confirmErr error

	shellAsked   bool
	confirmAsked bool
}

func (m *mockFormRunner) RunShellSelect(shells []string) (string, error) {
	m.shellAsked = true
	return m.shell, m.shellErr
}

func (m *mockFormRunner) RunConfirm(message string) (bool, error) {
	m.confirmAsked = true
	return m.confirm, m.confirmErr
}

func newTestRunner(form *mockFormRunner) (*Runner, afero.Fs) {
	fs := afero.NewMemMapFs()
	return &Runner{Fs: fs, FormRunner: form, Home: "/home/u"}, fs
}

func TestRunnerInstall_ExplicitShellWithYes(t *testing.T) {
	form := &mockFormRunner{}
	r, fs := newTestRunner(form)

	res, err := r.Install(InstallOptions{Shell: "bash", Yes: true, Bin: "smartcd", ListCommand: "ls"})
	require.NoError(t, err)
	assert.Equal(t, "bash", res.Shell)
	assert.Equal(t, "/home/u/.bashrc", res.RCPath)
	assert.False(t, res.AlreadyInstalled)
	assert.False(t, form.shellAsked)
	assert.False(t, form.confirmAsked)

	content, err := afero.ReadFile(fs, "/home/u/.bashrc")
	require.NoError(t, err)
	assert.Contains(t, string(content), `smartcd resolve -- "$@"`)
}

func TestRunnerInstall_DetectsShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	form := &mockFormRunner{confirm: true}
	r, fs := newTestRunner(form)

	res, err := r.Install(InstallOptions{Bin: "smartcd"})
	require.NoError(t, err)
	assert.Equal(t, "zsh", res.Shell)
	assert.False(t, form.shellAsked)
	assert.True(t, form.confirmAsked)

	ok, err := IsHookInstalled(fs, "/home/u/.zshrc")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRunnerInstall_PromptsForUnknownShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/tcsh")
	form := &mockFormRunner{shell: "fish"}
	r, _ := newTestRunner(form)

	res, err := r.Install(InstallOptions{Yes: true, Bin: "smartcd"})
	require.NoError(t, err)
	assert.True(t, form.shellAsked)
	assert.Equal(t, "fish", res.Shell)
	assert.Equal(t, "/home/u/.config/fish/conf.d/smartcd.fish", res.RCPath)
}

func TestRunnerInstall_Declined(t *testing.T) {
	form := &mockFormRunner{confirm: false}
	r, fs := newTestRunner(form)

	res, err := r.Install(InstallOptions{Shell: "zsh", Bin: "smartcd"})
	require.NoError(t, err)
	assert.True(t, res.Declined)

	exists, err := afero.Exists(fs, "/home/u/.zshrc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunnerInstall_AlreadyInstalledSkipsPrompt(t *testing.T) {
	form := &mockFormRunner{}
	r, fs := newTestRunner(form)
	require.NoError(t, afero.WriteFile(fs, "/home/u/.zshrc", []byte("# smartcd shell integration (zsh)\n"), 0600))

	res, err := r.Install(InstallOptions{Shell: "zsh", Bin: "smartcd"})
	require.NoError(t, err)
	assert.True(t, res.AlreadyInstalled)
	assert.False(t, form.confirmAsked)
}

func TestRunnerInstall_UnsupportedExplicitShell(t *testing.T) {
	r, _ := newTestRunner(&mockFormRunner{})

	_, err := r.Install(InstallOptions{Shell: "tcsh", Yes: true, Bin: "smartcd"})
	assert.ErrorIs(t, err, shell.ErrUnsupportedShell)
}

func TestRunnerInstall_FormError(t *testing.T) {
	t.Setenv("SHELL", "")
	boom := errors.New("user aborted")
	r, _ := newTestRunner(&mockFormRunner{shellErr: boom})

	_, err := r.Install(InstallOptions{Bin: "smartcd"})
	assert.ErrorIs(t, err, boom)
}
