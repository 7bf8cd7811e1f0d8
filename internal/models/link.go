package models

import "time"

const (
	// PreviewSize 控制台预览的最大链接数
	PreviewSize = 5
)

// LinkList 去重后的PDF链接列表
// 保持首次出现顺序,同一字符串(区分大小写)只保留一次
type LinkList struct {
	links []string
	seen  map[string]struct{}
}

// NewLinkList 创建空的链接列表
func NewLinkList() *LinkList {
	return &LinkList{
		links: make([]string, 0),
		seen:  make(map[string]struct{}),
	}
}

// Add 追加链接,已存在时忽略
// 返回: 是否为新链接
func (l *LinkList) Add(link string) bool {
	if _, ok := l.seen[link]; ok {
		return false
	}
	l.seen[link] = struct{}{}
	l.links = append(l.links, link)
	return true
}

// Len 唯一链接数量
func (l *LinkList) Len() int {
	return len(l.links)
}

// Links 返回链接副本
func (l *LinkList) Links() []string {
	out := make([]string, len(l.links))
	copy(out, l.links)
	return out
}

// Head 返回前n个链接(不足n个时返回全部)
func (l *LinkList) Head(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(l.links) {
		n = len(l.links)
	}
	out := make([]string, n)
	copy(out, l.links[:n])
	return out
}

// Summary 单次提取的结果摘要
type Summary struct {
	RunID      string        `json:"run_id"`      // 运行ID
	InputPath  string        `json:"input_path"`  // 输入MHTML文件
	OutputPath string        `json:"output_path"` // 输出链接文件
	Total      int           `json:"total"`       // 唯一链接数
	Preview    []string      `json:"preview"`     // 前5个链接
	Duration   time.Duration `json:"duration"`    // 总耗时
}
