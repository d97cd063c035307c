// Package logging はzerologのロガーを組み立てる
// 端末はゲーム画面が使うため、ログはファイルか指定のWriterに出す
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New はlevelとfileからロガーを生成する
// fileが空ならconsoleに人間向けの形式で出力し、consoleもnilなら捨てる
// 戻り値のcloseは必ず呼ぶこと
func New(level, file string, console io.Writer) (zerolog.Logger, func() error, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level %q: %w", level, err)
	}

	noop := func() error { return nil }

	var w io.Writer
	closeFn := noop
	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	case console != nil:
		w = zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}
	default:
		return zerolog.Nop(), noop, nil
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return logger, closeFn, nil
}

// Fatal は設定前の失敗をwへ人間向けの形式で出すロガー
// mainで起動に失敗したときに使う
func Fatal(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}).
		With().Timestamp().Logger()
}
