package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// 终端颜色代码
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// 表情与符号常量
const (
	InfoSymbol    = "ℹ️"
	SuccessSymbol = "✅"
	WarningSymbol = "⚠️"
	ErrorSymbol   = "❌"
	NetworkSymbol = "🌐"
	ScanSymbol    = "🔍"
	ConfigSymbol  = "⚙️"
	AlertSymbol   = "🔔"
)

// Logger 提供带颜色的终端日志，并可同时写入按日期滚动的日志文件
type Logger struct {
	stdLogger *log.Logger
	logDir    string
}

// NewLogger 创建一个新的日志实例；logDir 为空时不写文件
func NewLogger(logDir string) *Logger {
	return NewLoggerTo(os.Stdout, logDir)
}

// NewLoggerTo 与 NewLogger 相同，但输出到指定 writer
func NewLoggerTo(w io.Writer, logDir string) *Logger {
	return &Logger{
		stdLogger: log.New(w, "", 0), // 无前缀和标志，由我们自行处理
		logDir:    logDir,
	}
}

// formatLog 按时间戳、表情和颜色格式化日志消息
func (l *Logger) formatLog(level, symbol, color, msg string) string {
	timestamp := time.Now().Format("2006/01/02 15:04:05")
	return fmt.Sprintf("%s %s %s%s%s %s",
		timestamp,
		symbol,
		color,
		level,
		ColorReset,
		msg)
}

func (l *Logger) write(level, symbol, color, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logMsg := l.formatLog(level, symbol, color, msg)
	l.stdLogger.Println(logMsg)
	if l.logDir != "" {
		_ = LogToFile(l.logDir, logMsg)
	}
}

// Info 记录一条信息级别日志
func (l *Logger) Info(format string, args ...interface{}) {
	l.write("INFO", InfoSymbol, ColorBlue, format, args...)
}

// Success 记录一条成功日志
func (l *Logger) Success(format string, args ...interface{}) {
	l.write("SUCCESS", SuccessSymbol, ColorGreen, format, args...)
}

// Warning 记录一条警告日志
func (l *Logger) Warning(format string, args ...interface{}) {
	l.write("WARNING", WarningSymbol, ColorYellow, format, args...)
}

// Error 记录一条错误日志
func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERROR", ErrorSymbol, ColorRed, format, args...)
}

// Network 记录一条网络相关日志
func (l *Logger) Network(format string, args ...interface{}) {
	l.write("NETWORK", NetworkSymbol, ColorCyan, format, args...)
}

// Config 记录一条配置相关日志
func (l *Logger) Config(format string, args ...interface{}) {
	l.write("CONFIG", ConfigSymbol, ColorGreen, format, args...)
}

// Scan 记录一条数据源扫描日志
func (l *Logger) Scan(format string, args ...interface{}) {
	l.write("SCAN", ScanSymbol, ColorBlue, format, args...)
}

// Alert 记录一条告警发送日志
func (l *Logger) Alert(format string, args ...interface{}) {
	l.write("ALERT", AlertSymbol, ColorPurple, format, args...)
}

// Fatal 记录一条致命错误并退出程序
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.write("FATAL", ErrorSymbol, ColorRed, format, args...)
	os.Exit(1)
}

// LogToFile 将日志信息追加到 dir 下当天的日志文件
func LogToFile(dir string, message string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// 使用日期作为日志文件名
	date := time.Now().Format("2006-01-02")
	logFile := filepath.Join(dir, fmt.Sprintf("liquidation-monitor-%s.log", date))

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(message + "\n"); err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}
	return nil
}
