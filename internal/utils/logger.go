package utils

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// MainLogFile 主日志文件名
	MainLogFile = "pdf_links.log"
	// ErrorLogFile 错误日志文件名
	ErrorLogFile = "pdf_links_error.log"
)

// Logger 全局日志器(控制台+文件)
// InitLogger之前为空日志器,测试中可以直接调用提取逻辑
var Logger = zerolog.Nop()

// fileLogger 只写日志文件,不输出到控制台
var fileLogger = zerolog.Nop()

// LogConfig 日志配置
type LogConfig struct {
	Level        string // 文件日志级别: trace, debug, info, warn, error
	ConsoleLevel string // 控制台日志级别,stdout/stderr只保留摘要和错误行
	LogDir       string // 日志目录
	MaxSize      int    // 单个日志文件最大大小(MB)
	MaxBackups   int    // 保留的旧日志文件数量
	MaxAge       int    // 保留天数
	Compress     bool   // 是否压缩旧日志
}

// DefaultLogConfig 默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:        "info",
		ConsoleLevel: "warn",
		LogDir:       "logs",
		MaxSize:      10,
		MaxBackups:   3,
		MaxAge:       28,
		Compress:     true,
	}
}

// InitLogger 初始化日志系统
func InitLogger(config LogConfig) error {
	return initLogger(config, os.Stderr)
}

func initLogger(config LogConfig, console io.Writer) error {
	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return err
	}

	level := parseLevel(config.Level, zerolog.InfoLevel)
	consoleLevel := parseLevel(config.ConsoleLevel, zerolog.WarnLevel)
	// 全局级别取两者较低者,各输出再自行过滤
	globalLevel := level
	if consoleLevel < globalLevel {
		globalLevel = consoleLevel
	}
	zerolog.SetGlobalLevel(globalLevel)

	newRotating := func(name string) *lumberjack.Logger {
		return &lumberjack.Logger{
			Filename:   filepath.Join(config.LogDir, name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
	}

	fileWriter := zerolog.MultiLevelWriter(
		&FilteredWriter{Writer: newRotating(MainLogFile), MinLevel: level},
		&FilteredWriter{Writer: newRotating(ErrorLogFile), MinLevel: zerolog.ErrorLevel},
	)

	consoleWriter := &FilteredWriter{
		Writer: zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		},
		MinLevel: consoleLevel,
	}

	Logger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).
		With().
		Timestamp().
		Caller().
		Logger()
	fileLogger = zerolog.New(fileWriter).
		With().
		Timestamp().
		Logger()

	log.Logger = Logger

	Logger.Info().
		Str("level", level.String()).
		Str("console_level", consoleLevel.String()).
		Str("log_dir", config.LogDir).
		Msg("日志系统初始化完成")

	return nil
}

// parseLevel 解析日志级别,无效或为空时使用fallback
func parseLevel(s string, fallback zerolog.Level) zerolog.Level {
	if s == "" {
		return fallback
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return fallback
	}
	return level
}

// FilteredWriter 过滤写入器,仅写入指定级别及以上的日志
type FilteredWriter struct {
	Writer   io.Writer
	MinLevel zerolog.Level
}

// Write 实现io.Writer接口
// 没有级别信息的写入直接透传
func (w *FilteredWriter) Write(p []byte) (n int, err error) {
	return w.Writer.Write(p)
}

// WriteLevel 带级别的写入
func (w *FilteredWriter) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	if level >= w.MinLevel {
		return w.Writer.Write(p)
	}
	return len(p), nil
}

// Info 快捷方法: 信息日志
func Info(msg string) {
	Logger.Info().Msg(msg)
}

// Warnf 快捷方法: 格式化警告日志
func Warnf(format string, args ...interface{}) {
	Logger.Warn().Msgf(format, args...)
}

// Debugf 快捷方法: 格式化调试日志
func Debugf(format string, args ...interface{}) {
	Logger.Debug().Msgf(format, args...)
}

// ErrorToFile 错误日志,只写入日志文件
// 用于控制台已经有单独错误提示的场景
func ErrorToFile(err error, msg string) {
	fileLogger.Error().Err(err).Msg(msg)
}
