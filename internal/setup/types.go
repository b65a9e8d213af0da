package setup

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunShellSelect는 셸 선택 UI를 표시한다.
	RunShellSelect(shells []string) (string, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}

// InstallOptions는 wrapper 설치 옵션이다.
type InstallOptions struct {
	// Shell이 비어 있으면 $SHELL에서 감지하고, 그래도 모르면 사용자에게 묻는다.
	Shell string
	// Yes이면 확인 프롬프트를 건너뛴다.
	Yes bool
	// Bin은 wrapper가 호출할 smartcd 실행 파일이다.
	Bin string
	// ListCommand는 cd 성공 후 실행할 명령이다.
	ListCommand string
}

// InstallResult는 설치 결과다.
type InstallResult struct {
	Shell  string
	RCPath string
	// AlreadyInstalled이면 rc 파일을 수정하지 않았다.
	AlreadyInstalled bool
	// Declined이면 사용자가 설치를 취소했다.
	Declined bool
}
