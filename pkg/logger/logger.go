package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level string
	Dir   string
	App   string
	File  bool
}

// New собирает zap-логгер: консоль всегда, файл с ротацией — по флагу.
func New(cfg Config) *zap.Logger {
	lv := zap.NewAtomicLevel()
	if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
		_ = lv.UnmarshalText([]byte("info"))
	}
	if cfg.App == "" {
		cfg.App = "app"
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg()),
			zapcore.Lock(os.Stdout),
			lv,
		),
	}
	if cfg.File {
		cores = append(cores, fileCore(filepath.Join(cfg.Dir, cfg.App+".log"), lv))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

func fileCore(file string, lv zapcore.LevelEnabler) zapcore.Core {
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    100,
		MaxBackups: 7,
		MaxAge:     10,
		Compress:   true,
	}
	return zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lv,
	)
}

func encCfg() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}
