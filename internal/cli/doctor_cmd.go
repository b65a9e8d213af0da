package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/smartcd/internal/doctor"
	"github.com/hbjs97/smartcd/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			if shellType == "" {
				shellType = setup.DetectShell()
			}
			rcPath := setup.ShellRCPath(a.Home, shellType)
			results := doctor.RunAll(a.Fs, a.LookPath, a.CfgPath, shellType, rcPath)
			printDiagResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (bash, zsh, fish). 생략하면 $SHELL에서 감지")
	return cmd
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(w, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
