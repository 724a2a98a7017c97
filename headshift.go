// Package headshift 将目录树中 Markdown 文件的一级标题（#）降为二级标题（##）
//
// 这个包面向 Obsidian 式笔记库：递归扫描目录、跳过排除目录、
// 逐文件做按行的标题降级，并在写入前保证备份与原子替换。
//
// 核心功能：
//   - H1 → H2 按行转换，frontmatter 与代码围栏原样保留
//   - 目录递归扫描，默认排除 .obsidian/.git/node_modules 等
//   - 预览（dry-run）为默认模式，--write 才落盘
//   - 写入前时间戳备份 + 同目录临时文件原子替换
//   - 报告 setext（下划线式）一级标题，提示行扫描无法触及的部分
//
// 主要 API：
//   - Convert(): 同步转换单段内容，返回 (text, count)
//   - Demote(): 完整处理一个目录树，返回运行摘要
//
// 示例：
//
//	// 单段内容转换
//	text, n := headshift.Convert("# Title\n\nbody\n")
//
//	// 完整运行（预览模式）
//	summary, err := headshift.Demote("/path/to/vault", headshift.WithVerbose(true))
//	if err != nil {
//	    // 根目录无效等配置级错误
//	}
//	if len(summary.Errors) > 0 {
//	    // 个别文件失败，其余文件已照常处理
//	}
package headshift

import (
	"github.com/riverfjs/headshift-go/internal/heading"
)

// Convert 对单段 Markdown 内容做 H1 → H2 降级
//
// 这是较低级别的同步 API：不触碰文件系统，输入输出均为字符串。
// frontmatter 与代码围栏内的行原样保留。对于完整的目录处理
// （扫描、备份、原子写入），使用 Demote()。
//
// 返回：
//   - string: 转换后的内容
//   - int: 替换次数
func Convert(content string) (string, int) {
	return heading.Demote(content)
}

// Demote 对 root 下的整个目录树执行一次转换运行
//
// 这是主要的高层 API。默认是预览模式：统计将要发生的替换但
// 不修改任何文件；通过 WithWrite(true) 启用写入。
//
// 参数：
//   - root: 待扫描的根目录
//   - opts: 功能选项，见 options.go
//
// 返回：
//   - *Summary: 运行摘要（扫描数、改动数、替换总数、错误列表）
//   - error: 配置级错误（根目录不存在或不是目录）；个别文件的
//     失败不会让运行中止，只会记入 Summary.Errors
func Demote(root string, opts ...Option) (*Summary, error) {
	return Run(applyOptions(root, opts...))
}
