package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// InputFileName 输入MHTML快照文件名
	InputFileName = "Quick Reference Guides single file.mhtml"
	// OutputFileName 输出链接文件名
	OutputFileName = "pdf_links_final.txt"
)

// ResolvePaths 返回程序所在目录下的输入/输出文件路径
func ResolvePaths() (inputPath, outputPath string, err error) {
	exe, err := os.Executable()
	if err != nil {
		return "", "", fmt.Errorf("获取程序路径失败: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	inputPath, outputPath = pathsIn(filepath.Dir(exe))
	return inputPath, outputPath, nil
}

// pathsIn 拼接目录下的输入/输出文件路径
func pathsIn(dir string) (string, string) {
	return filepath.Join(dir, InputFileName), filepath.Join(dir, OutputFileName)
}
