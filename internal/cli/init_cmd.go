package cli

import (
	"fmt"

	"github.com/hbjs97/smartcd/internal/config"
	"github.com/hbjs97/smartcd/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var bin string

	cmd := &cobra.Command{
		Use:       "init <bash|zsh|fish>",
		Short:     "셸 cd wrapper 함수를 출력한다",
		Example:   `  eval "$(smartcd init zsh)"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: shell.Supported,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFS(a.Fs, a.CfgPath)
			if err != nil {
				return err
			}
			snippet, err := shell.WrapperSnippet(args[0], bin, cfg.List())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}
	cmd.Flags().StringVar(&bin, "bin", "smartcd", "wrapper가 호출할 smartcd 실행 파일")
	return cmd
}
