package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/smartcd/internal/collation"
	"github.com/spf13/afero"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// CurrentVersion은 지원하는 설정 파일 버전이다.
const CurrentVersion = 1

// DefaultListCommand는 cd 성공 후 실행되는 기본 목록 명령이다.
const DefaultListCommand = "ls --color=tty"

const fileHeader = `# smartcd configuration file
#
# locale:       후보 디렉토리 정렬 로케일. "C"는 바이트 순서
# skip_hidden:  "."으로 시작하는 디렉토리를 후보에서 제외
# list_command: cd 성공 후 실행할 명령. 빈 문자열이면 실행하지 않음

`

// Config는 smartcd 설정 파일의 최상위 구조체다.
type Config struct {
	Version     int     `toml:"version"`
	Locale      string  `toml:"locale"`
	SkipHidden  bool    `toml:"skip_hidden"`
	ListCommand *string `toml:"list_command"`
}

// Default는 설정 파일이 없을 때 사용하는 기본 설정을 반환한다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다. 파일이 없으면 기본 설정을 반환한다.
func Load(path string) (*Config, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS는 fs에서 config.toml을 읽는다.
func LoadFS(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 설정을 TOML 파일로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	return SaveFS(afero.NewOsFs(), path, cfg)
}

// SaveFS는 fs에 설정 파일을 쓴다. 상위 디렉토리가 없으면 만든다.
func SaveFS(fs afero.Fs, path string, cfg *Config) error {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// List는 cd 후 실행할 명령을 반환한다. 빈 문자열이면 실행하지 않는다.
func (c *Config) List() string {
	if c.ListCommand == nil {
		return DefaultListCommand
	}
	return *c.ListCommand
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.Locale == "" {
		c.Locale = collation.DefaultLocale
	}
	if c.ListCommand == nil {
		s := DefaultListCommand
		c.ListCommand = &s
	}
}

func (c *Config) validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if _, err := collation.New(c.Locale); err != nil {
		return fmt.Errorf("config.Load: %w: locale: %w", ErrConfig, err)
	}
	return nil
}
