// Package logger builds the zap.Logger used by a runner from its
// configuration.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Mode string

const (
	Auto    Mode = "auto"
	Console Mode = "console"
	JSON    Mode = "json"
)

// Config describes where and how to log.  Path is "stderr" (the
// default), "stdout", or the name of a file, which is rotated once it
// reaches MaxSize megabytes.  In Auto mode, the console encoding is used
// when writing to a terminal and JSON otherwise.
type Config struct {
	Path       string `yaml:"path"`
	Level      string `yaml:"level"`
	Mode       Mode   `yaml:"mode"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
}

func (c Config) Validate() error {
	_, err := c.level()
	if err != nil {
		return err
	}
	switch c.Mode {
	case "", Auto, Console, JSON:
		return nil
	}
	return fmt.Errorf("unknown log mode %q", c.Mode)
}

func (c Config) level() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(c.Level)
}

func New(c Config) (*zap.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := c.level()
	ws, tty := c.sink()
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if c.Mode == Console || (c.Mode != JSON && tty) {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, ws, level)), nil
}

func (c Config) sink() (zapcore.WriteSyncer, bool) {
	switch c.Path {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), term.IsTerminal(int(os.Stderr.Fd()))
	case "stdout":
		return zapcore.Lock(os.Stdout), term.IsTerminal(int(os.Stdout.Fd()))
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
	}), false
}
