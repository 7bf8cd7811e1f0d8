package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RecoveryAshes/PdfLinkFind/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Reporter 结果输出器
// 负责写入链接文件并打印控制台摘要
type Reporter struct {
	out    io.Writer // 摘要输出
	errOut io.Writer // 错误输出
}

// NewReporter 创建结果输出器
// out/errOut为nil时分别使用stdout/stderr
func NewReporter(out, errOut io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Reporter{out: out, errOut: errOut}
}

// WriteLinks 将链接写入输出文件,一行一个
// 以"\n"连接,末尾不追加换行; 已存在的文件会被整体覆盖
func (r *Reporter) WriteLinks(outputPath string, links []string) error {
	content := strings.Join(links, "\n")
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("写入链接文件失败: %w", err)
	}

	Debugf("保存链接文件: %s (%d 条)", outputPath, len(links))
	return nil
}

// PrintSummary 打印链接数量、前5个链接预览和输出路径
func (r *Reporter) PrintSummary(summary *models.Summary) {
	fmt.Fprintf(r.out, "Found %d unique PDF links.\n", summary.Total)
	fmt.Fprintf(r.out, "First %d links:\n", models.PreviewSize)
	for i, link := range summary.Preview {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, link)
	}
	fmt.Fprintf(r.out, "\nAll links have been saved to: %s\n", summary.OutputPath)
}

// PrintReadError 打印读取失败信息
func (r *Reporter) PrintReadError(err error) {
	fmt.Fprintf(r.errOut, "Error reading file: %v\n", err)
}

// NewProgressBar 创建进度条
// w为nil时写入stderr
func NewProgressBar(max int, description string, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		w = os.Stderr
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
