package models

import "fmt"

// ReadError 输入文件读取错误
// 文件不存在、无权限或读取过程中的I/O错误都归为此类
type ReadError struct {
	// Path 输入文件路径
	Path string

	// Cause 底层错误 (如 *fs.PathError)
	Cause error
}

// Error 实现error接口
func (e *ReadError) Error() string {
	return fmt.Sprintf("读取文件失败 [%s]: %v", e.Path, e.Cause)
}

// Unwrap 支持errors.Unwrap
func (e *ReadError) Unwrap() error {
	return e.Cause
}
