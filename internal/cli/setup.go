package cli

import (
	"fmt"

	"github.com/hbjs97/smartcd/internal/collation"
	"github.com/hbjs97/smartcd/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	var force bool
	cfg := config.Default()
	var listCmd string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "기본 설정 파일을 생성한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("list-command") {
				cfg.ListCommand = &listCmd
			}
			return a.runSetup(cmd, cfg, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	cmd.Flags().StringVar(&cfg.Locale, "locale", collation.DefaultLocale, "후보 정렬 로케일")
	cmd.Flags().BoolVar(&cfg.SkipHidden, "skip-hidden", false, "숨김 디렉토리를 후보에서 제외")
	cmd.Flags().StringVar(&listCmd, "list-command", config.DefaultListCommand, "cd 후 실행할 명령")
	return cmd
}

// runSetup는 설정 파일을 생성한다.
func (a *App) runSetup(cmd *cobra.Command, cfg *config.Config, force bool) error {
	exists, err := afero.Exists(a.Fs, a.CfgPath)
	if err != nil {
		return fmt.Errorf("cli.setup: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다: %s (--force로 덮어쓰기)", a.CfgPath)
	}

	if _, err := collation.New(cfg.Locale); err != nil {
		return fmt.Errorf("cli.setup: %w: %w", config.ErrConfig, err)
	}

	if err := config.SaveFS(a.Fs, a.CfgPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	fmt.Fprintln(cmd.OutOrStdout(), "smartcd doctor로 환경을 확인하세요.")
	return nil
}
