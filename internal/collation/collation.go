package collation

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale는 기준 정렬 로케일이다.
const DefaultLocale = "en_US.UTF-8"

// ErrUnknownLocale는 로케일 문자열을 해석할 수 없을 때 반환된다.
var ErrUnknownLocale = errors.New("알 수 없는 로케일")

// Collator는 두 문자열의 정렬 순서를 비교한다.
type Collator interface {
	// Compare는 a < b 이면 음수, a == b 이면 0, a > b 이면 양수를 반환한다.
	Compare(a, b string) int
}

// New는 POSIX 로케일 이름(예: "en_US.UTF-8")에 맞는 Collator를 생성한다.
// "C"와 "POSIX"는 바이트 순서 비교다.
func New(locale string) (Collator, error) {
	name := strings.TrimSpace(locale)
	if name == "" {
		name = DefaultLocale
	}
	if name == "C" || name == "POSIX" || strings.HasPrefix(name, "C.") {
		return ByteOrder{}, nil
	}

	tag, err := ParseLocale(name)
	if err != nil {
		return nil, err
	}
	return &localeCollator{col: collate.New(tag)}, nil
}

// ParseLocale는 POSIX 로케일 이름을 BCP 47 언어 태그로 변환한다.
// 인코딩(".UTF-8")과 modifier("@euro")는 무시한다.
func ParseLocale(locale string) (language.Tag, error) {
	name := locale
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", "-")
	if name == "" {
		return language.Und, fmt.Errorf("collation.ParseLocale: %w: %q", ErrUnknownLocale, locale)
	}

	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("collation.ParseLocale: %w: %q", ErrUnknownLocale, locale)
	}
	return tag, nil
}

// ByteOrder는 C 로케일의 strcoll과 같은 바이트 순서 비교다.
type ByteOrder struct{}

// Compare는 strings.Compare와 같다.
func (ByteOrder) Compare(a, b string) int {
	return strings.Compare(a, b)
}

// collate.Collator는 내부 버퍼를 재사용하므로 동시 사용에 안전하지 않다.
type localeCollator struct {
	col *collate.Collator
}

func (c *localeCollator) Compare(a, b string) int {
	return c.col.CompareString(a, b)
}
