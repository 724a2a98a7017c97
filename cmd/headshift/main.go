package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	headshift "github.com/riverfjs/headshift-go"
)

// 简化的 CLI：位置参数为笔记库根目录。
// 默认 dry-run，--write 才落盘；备份默认开启，--no-backup 关闭。
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("headshift", flag.ContinueOnError)
	var (
		flagWrite    bool
		flagNoBackup bool
		flagVerbose  bool
		flagExclude  string
	)
	fs.BoolVar(&flagWrite, "write", false, "actually modify files (default is dry run)")
	fs.BoolVar(&flagNoBackup, "no-backup", false, "skip creating backups before modifying")
	fs.BoolVar(&flagVerbose, "verbose", false, "print per-file details")
	fs.BoolVar(&flagVerbose, "v", false, "print per-file details (shorthand)")
	fs.StringVar(&flagExclude, "exclude", "", "comma-separated folder names to exclude")
	fs.Usage = usage
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		usage()
		return 1
	}
	root := fs.Arg(0)

	summary, err := headshift.Demote(root,
		headshift.WithWrite(flagWrite),
		headshift.WithBackups(!flagNoBackup),
		headshift.WithVerbose(flagVerbose),
		headshift.WithExcludes(parseExcludes(flagExclude)...),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	// 退出码只反映是否有文件级错误，与是否发生改写无关
	if len(summary.Errors) > 0 {
		return 1
	}
	return 0
}

// parseExcludes 解析逗号分隔的排除目录名，忽略空白项。
func parseExcludes(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: headshift [flags] <vault-root>

Convert Markdown H1 headings to H2 headings across a vault.

Flags:
  --write       actually modify files (default is dry run)
  --no-backup   skip creating backups before modifying
  -v, --verbose print per-file details
  --exclude     comma-separated folder names to exclude

Safety:
  - Dry run is the default. Use --write to modify files.
  - Backups are created in <vault>/_backups/ with timestamps.
  - Files are written atomically (temp file, then rename).
`)
}
