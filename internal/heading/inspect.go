package heading

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置，与常见 GFM 文档保持一致
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, tasklists)
	),
}

// CountSetextH1 统计内容中下划线风格（setext）的一级标题数量。
//
// 行扫描器只降级 ATX 标题（"# ..."）；用 "=" 下划线写出的一级标题
// 不在其改写范围内。这里用 goldmark 解析 AST，找出 Level 为 1 且
// 标题行不以 '#' 开头的节点，供报告层提示用户。只读，不修改内容。
func CountSetextH1(content string) int {
	md := goldmark.New(StandardOptions...)

	source := []byte(content)
	reader := text.NewReader(source)
	node := md.Parser().Parse(reader)

	count := 0
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		if h.Lines().Len() == 0 {
			// 空 ATX 标题（单独一个 "#"）没有文本段
			return ast.WalkContinue, nil
		}
		if !atxHeadingLine(source, h.Lines().At(0).Start) {
			count++
		}
		return ast.WalkContinue, nil
	})
	return count
}

// atxHeadingLine 回溯到 pos 所在行的行首，判断该行是否以 '#' 开头
// （允许至多 3 个前导空格）。
func atxHeadingLine(source []byte, pos int) bool {
	start := pos
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	line := string(source[start:pos])
	return strings.HasPrefix(strings.TrimLeft(line, " "), "#")
}
