package cli

import (
	"fmt"

	"github.com/hbjs97/smartcd/internal/config"
	"github.com/hbjs97/smartcd/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newInstallCmd() *cobra.Command {
	var opts setup.InstallOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "셸 rc 파일에 cd wrapper를 설치한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInstall(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "셸 유형 (bash, zsh, fish). 생략하면 $SHELL에서 감지")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "확인 없이 설치")
	cmd.Flags().StringVar(&opts.Bin, "bin", "smartcd", "wrapper가 호출할 smartcd 실행 파일")
	return cmd
}

func (a *App) runInstall(cmd *cobra.Command, opts setup.InstallOptions) error {
	cfg, err := config.LoadFS(a.Fs, a.CfgPath)
	if err != nil {
		return err
	}
	opts.ListCommand = cfg.List()

	runner := &setup.Runner{Fs: a.Fs, FormRunner: a.FormRunner, Home: a.Home}
	res, err := runner.Install(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case res.AlreadyInstalled:
		fmt.Fprintf(out, "이미 설치되어 있습니다: %s\n", res.RCPath)
	case res.Declined:
		fmt.Fprintln(out, "설치를 취소했습니다.")
	default:
		fmt.Fprintf(out, "cd wrapper가 설치되었습니다: %s\n", res.RCPath)
		fmt.Fprintln(out, "새 셸을 열거나 rc 파일을 다시 읽으세요.")
	}
	return nil
}
