// Package heading 实现按行的 H1 → H2 降级扫描器。
//
// 扫描器对整个文件内容做单次前向遍历，逐行归类为 frontmatter、
// 代码围栏或普通行，只在普通行上做标题替换。被保护区域内的
// 每一行都原样输出，逐字符不变。
package heading

import "strings"

// state 标记当前行所处的保护区域。
type state int

const (
	// stateNormal 普通区域，行会被扫描标题
	stateNormal state = iota
	// stateFrontmatter 文件起始的 YAML frontmatter 区域
	stateFrontmatter
	// stateFenced 代码围栏区域（``` 或 ~~~）
	stateFenced
)

// 围栏标记族，开栏与闭栏必须同族
const (
	fenceBacktick = "```"
	fenceTilde    = "~~~"
)

// frontmatterDelim frontmatter 的裸分隔行（去除首尾空白后须完全相等）
const frontmatterDelim = "---"

// Demote 将内容中的一级标题降为二级标题。
//
// 行为约定：
//   - 内容按 "\n" 拆行，处理后按 "\n" 重新拼接，不做换行风格归一化
//   - frontmatter 只能从第 0 行开始，以下一个裸 "---" 行结束，
//     区域内（含两条分隔行）全部原样输出
//   - 围栏行及围栏内的行全部原样输出；闭栏必须与开栏同族
//   - 标题匹配：0–3 个前导空格 + "# " + 任意余文；命中后在同一位置
//     多写一个 '#'，前导空格与余文逐字保留
//
// 返回转换后的内容与替换次数。纯函数，无 I/O，无副作用。
func Demote(content string) (string, int) {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	count := 0

	st := stateNormal
	fence := ""

	for i, line := range lines {
		if i == 0 && strings.TrimSpace(line) == frontmatterDelim {
			st = stateFrontmatter
			out = append(out, line)
			continue
		}

		if st == stateFrontmatter {
			out = append(out, line)
			if strings.TrimSpace(line) == frontmatterDelim {
				st = stateNormal
			}
			continue
		}

		stripped := strings.TrimLeft(line, " \t")

		if st == stateFenced {
			if strings.HasPrefix(stripped, fence) {
				st = stateNormal
				fence = ""
			}
			out = append(out, line)
			continue
		}

		if strings.HasPrefix(stripped, fenceBacktick) {
			st = stateFenced
			fence = fenceBacktick
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(stripped, fenceTilde) {
			st = stateFenced
			fence = fenceTilde
			out = append(out, line)
			continue
		}

		if indent, ok := matchH1(line); ok {
			out = append(out, line[:indent]+"#"+line[indent:])
			count++
			continue
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n"), count
}

// matchH1 判断一行是否为可降级的一级标题。
// 命中条件：0–3 个前导空格，然后是 '#'，紧跟一个空格。
// 返回前导空格数与是否命中。
func matchH1(line string) (int, bool) {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
		if indent > 3 {
			return 0, false
		}
	}
	if indent+1 >= len(line) {
		return 0, false
	}
	if line[indent] != '#' || line[indent+1] != ' ' {
		return 0, false
	}
	return indent, true
}
