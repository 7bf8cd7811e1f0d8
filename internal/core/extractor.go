package core

import (
	"io"
	"os"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/RecoveryAshes/PdfLinkFind/internal/models"
	"github.com/RecoveryAshes/PdfLinkFind/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
)

// pdfLinkPattern PDF链接匹配规则
// 协议 + 非空白/引号/尖括号字符(非贪婪) + .pdf, 不区分大小写
// 空白字符集与JavaScript的\s一致
const pdfLinkPattern = `(?i)https?://[^\s\v\x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}"'<>]+?\.pdf`

var pdfLinkRegex = regexp.MustCompile(pdfLinkPattern)

// Extractor PDF链接提取器
// 职责: 读取MHTML快照,扫描PDF链接,规范化去重,写入结果并输出摘要
type Extractor struct {
	// 结果输出器
	reporter *utils.Reporter

	// 进度条输出,nil表示不显示
	progressOut io.Writer
}

// NewExtractor 创建提取器实例
func NewExtractor(reporter *utils.Reporter, progressOut io.Writer) *Extractor {
	if reporter == nil {
		reporter = utils.NewReporter(nil, nil)
	}
	return &Extractor{
		reporter:    reporter,
		progressOut: progressOut,
	}
}

// Extract 读取文件并提取PDF链接
// 读取失败返回 *models.ReadError
func (e *Extractor) Extract(inputPath string) (*models.LinkList, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, &models.ReadError{Path: inputPath, Cause: err}
	}

	utils.Debugf("读取文件: %s (%d 字节)", inputPath, len(data))

	if !utf8.Valid(data) {
		utils.Warnf("文件包含非UTF-8字节,已替换为U+FFFD: %s", inputPath)
	}
	text, err := decodeUTF8(data)
	if err != nil {
		return nil, &models.ReadError{Path: inputPath, Cause: err}
	}
	return e.ExtractFromText(text), nil
}

// decodeUTF8 按UTF-8解码
// 每个非法子序列(最大非法前缀)各替换为一个U+FFFD,与浏览器/Node的解码一致
func decodeUTF8(data []byte) (string, error) {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// ExtractFromText 从文本中提取PDF链接
// 整个文档一次扫描,不按行切分
func (e *Extractor) ExtractFromText(text string) *models.LinkList {
	matches := pdfLinkRegex.FindAllString(text, -1)
	links := models.NewLinkList()

	var advance func()
	if e.progressOut != nil && len(matches) > 0 {
		bar := utils.NewProgressBar(len(matches), "🔍 整理链接", e.progressOut)
		defer bar.Finish()
		advance = func() { _ = bar.Add(1) }
	}

	for _, match := range matches {
		if !links.Add(NormalizeLink(match)) {
			utils.Logger.Trace().Str("link", match).Msg("重复链接已忽略")
		}
		if advance != nil {
			advance()
		}
	}

	utils.Debugf("匹配 %d 处, 去重后 %d 个链接", len(matches), links.Len())
	return links
}

// NormalizeLink 规范化单个链接
// 去掉末尾一个引号,反斜杠替换为正斜杠,去除首尾空白
func NormalizeLink(raw string) string {
	link := raw
	if strings.HasSuffix(link, `"`) || strings.HasSuffix(link, `'`) {
		link = link[:len(link)-1]
	}
	link = strings.ReplaceAll(link, `\`, "/")
	return strings.TrimSpace(link)
}

// Run 执行完整流程: 提取 -> 写入 -> 摘要
// 读取失败时不写输出文件
func (e *Extractor) Run(inputPath, outputPath string) (*models.Summary, error) {
	start := time.Now()
	runID := uuid.New().String()
	logger := utils.Logger.With().Str("run_id", runID).Logger()

	logger.Info().Str("input", inputPath).Msg("开始提取PDF链接")

	links, err := e.Extract(inputPath)
	if err != nil {
		return nil, err
	}

	if err := e.reporter.WriteLinks(outputPath, links.Links()); err != nil {
		return nil, err
	}

	summary := &models.Summary{
		RunID:      runID,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Total:      links.Len(),
		Preview:    links.Head(models.PreviewSize),
		Duration:   time.Since(start),
	}
	e.reporter.PrintSummary(summary)

	logger.Info().
		Int("total", summary.Total).
		Str("output", outputPath).
		Dur("duration", summary.Duration).
		Msg("✅ 提取完成")

	return summary, nil
}
