package logger

import "context"

// NopLogger 空日志实现（测试/禁用场景）
type NopLogger struct{}

// NewNop 创建空日志实例
func NewNop() Logger {
	return &NopLogger{}
}

func (l *NopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (l *NopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (l *NopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (l *NopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (l *NopLogger) Sync() error                                                    { return nil }
