// Package config は環境変数と.envファイルから設定を読み込む
// 各cmdのフラグがここで読んだ値を上書きする
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/nnaakkaaii/term2048/internal/domain"
)

// 環境変数名
const (
	EnvTarget   = "T2048_TARGET"
	EnvSeed     = "T2048_SEED"
	EnvDepth    = "T2048_DEPTH"
	EnvLogLevel = "LOG_LEVEL"
	EnvLogFile  = "LOG_FILE"
)

// Config はコマンド間で共有する設定
type Config struct {
	Target   int    // 勝利となるタイル値
	Seed     int64  // 0なら時刻から生成
	Depth    int    // ソルバーの探索深さ
	LogLevel string // zerologのレベル名
	LogFile  string // 空ならファイルに出力しない
}

// Default はデフォルトの設定を返す
func Default() Config {
	return Config{
		Target:   domain.DefaultTarget,
		Seed:     0,
		Depth:    3,
		LogLevel: "info",
	}
}

// Load はDefaultの上に.envファイル（指定がなければ".env"）と環境変数を重ねる
// 存在しないファイルは無視する。値の検証はフラグを反映した後にValidateで行う
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	var err error
	if cfg.Target, err = envInt(EnvTarget, cfg.Target); err != nil {
		return Config{}, err
	}
	if cfg.Depth, err = envInt(EnvDepth, cfg.Depth); err != nil {
		return Config{}, err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFile = getEnv(EnvLogFile, cfg.LogFile)
	return cfg, nil
}

// Validate は設定値を検証する
func (c Config) Validate() error {
	if c.Target < 4 || c.Target&(c.Target-1) != 0 {
		return fmt.Errorf("target %d: must be a power of two >= 4", c.Target)
	}
	if c.Depth < 1 {
		return fmt.Errorf("depth %d: must be >= 1", c.Depth)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
