package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hbjs97/smartcd/internal/doctor"
	"github.com/hbjs97/smartcd/internal/logging"
	"github.com/hbjs97/smartcd/internal/setup"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App은 명령 실행에 필요한 의존성을 묶는다. 테스트에서는 필드를 직접 채운다.
type App struct {
	CfgPath    string
	Verbose    bool
	Fs         afero.Fs
	FormRunner setup.FormRunner
	LookPath   doctor.LookPathFunc
	Home       string
}

// NewApp은 실제 파일시스템과 huh 폼을 사용하는 App을 생성한다.
func NewApp() *App {
	home := homeDir()
	return &App{
		CfgPath:    filepath.Join(home, ".config", "smartcd", "config.toml"),
		Fs:         afero.NewOsFs(),
		FormRunner: &setup.HuhFormRunner{},
		LookPath:   exec.LookPath,
		Home:       home,
	}
}

// NewRootCmd는 smartcd CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return NewApp().NewRootCmd()
}

// NewRootCmd는 App에 바인딩된 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "smartcd",
		Short:         "부분 입력이나 오타를 가까운 디렉토리로 바꿔 주는 cd 도우미",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", a.Verbose, "진단 로그를 stderr로 출력")

	cmd.AddCommand(
		a.newResolveCmd(),
		a.newInitCmd(),
		a.newInstallCmd(),
		a.newSetupCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

func (a *App) logger(cmd *cobra.Command) zerolog.Logger {
	return logging.New(cmd.ErrOrStderr(), a.Verbose)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
