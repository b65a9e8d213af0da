package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hbjs97/smartcd/internal/collation"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ErrUnreadable는 후보 디렉토리를 조회할 수 없을 때 반환된다.
var ErrUnreadable = errors.New("디렉토리를 읽을 수 없음")

// Options는 Resolver의 선택 설정이다.
type Options struct {
	// SkipHidden이면 "."으로 시작하는 후보를 제외한다.
	SkipHidden bool
	// Logger가 nil이면 로그를 남기지 않는다.
	Logger *zerolog.Logger
}

// Resolver는 토큰을 cd 대상 경로로 변환한다.
type Resolver struct {
	fs         afero.Fs
	collator   collation.Collator
	skipHidden bool
	log        zerolog.Logger
}

// New는 새 Resolver를 생성한다.
func New(fs afero.Fs, c collation.Collator, opts Options) *Resolver {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Resolver{fs: fs, collator: c, skipHidden: opts.SkipHidden, log: log}
}

// Resolve는 다음 순서로 cd 대상을 결정한다.
//  1. "-" 또는 "+"로 시작하면 그대로 반환한다.
//  2. 존재하는 디렉토리면 그대로 반환한다.
//  3. 존재하는 일반 파일이면 그 상위 디렉토리를 반환한다.
//  4. dirname의 하위 디렉토리 중 basename으로 시작하는 첫 항목,
//     없으면 basename을 포함하는 첫 항목을 "dirname/name"으로 반환한다.
//  5. 일치 항목이 없으면 dirname을 반환한다.
func (r *Resolver) Resolve(token string) (string, error) {
	if strings.HasPrefix(token, "-") || strings.HasPrefix(token, "+") {
		return token, nil
	}

	dir, base := splitPath(token)

	info, err := r.fs.Stat(token)
	switch {
	case err == nil && info.IsDir():
		r.log.Debug().Str("token", token).Msg("existing directory")
		return token, nil
	case err == nil && info.Mode().IsRegular():
		r.log.Debug().Str("token", token).Str("dir", dir).Msg("existing file")
		return dir, nil
	}

	dirs, err := r.subdirs(dir)
	if err != nil {
		return "", fmt.Errorf("resolver.Resolve: %w", err)
	}
	slices.SortFunc(dirs, r.collator.Compare)

	needle := strings.ToLower(base)
	for _, d := range dirs {
		if strings.HasPrefix(strings.ToLower(d), needle) {
			r.log.Debug().Str("token", token).Str("match", d).Msg("prefix match")
			return dir + "/" + d, nil
		}
	}
	for _, d := range dirs {
		if strings.Contains(strings.ToLower(d), needle) {
			r.log.Debug().Str("token", token).Str("match", d).Msg("substring match")
			return dir + "/" + d, nil
		}
	}

	r.log.Debug().Str("token", token).Str("dir", dir).Int("candidates", len(dirs)).Msg("no match")
	return dir, nil
}

// subdirs는 dir 바로 아래의 디렉토리 이름 목록을 반환한다. 디렉토리를 가리키는 심볼릭 링크도 포함한다.
func (r *Resolver) subdirs(dir string) ([]string, error) {
	entries, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if r.skipHidden && strings.HasPrefix(name, ".") {
			continue
		}
		isDir := e.IsDir()
		if e.Mode()&os.ModeSymlink != 0 {
			target, err := r.fs.Stat(filepath.Join(dir, name))
			isDir = err == nil && target.IsDir()
		}
		if isDir {
			names = append(names, name)
		}
	}
	return names, nil
}

// splitPath는 POSIX dirname/basename 규칙으로 p를 나눈다.
// dirname은 정규화하지 않으며 비어 있으면 "."이다.
func splitPath(p string) (dir, base string) {
	i := strings.LastIndex(p, "/") + 1
	dir, base = p[:i], p[i:]
	if trimmed := strings.TrimRight(dir, "/"); trimmed != "" {
		dir = trimmed
	}
	if dir == "" {
		dir = "."
	}
	return dir, base
}
