package headshift

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/riverfjs/headshift-go/internal/fileio"
	"github.com/riverfjs/headshift-go/internal/heading"
	"github.com/riverfjs/headshift-go/internal/scan"
)

const bannerWidth = 60

// Run 完整同步管道：校验根目录 → 扫描 → 逐文件处理 → 汇总报告
//
// 文件按路径排序后逐个处理，互不影响：个别文件的失败只记入
// Summary.Errors，其余文件照常进行。只有配置级错误（根目录
// 不存在或不是目录）会让 Run 返回 error。
func Run(cfg *Config) (*Summary, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("vault path does not exist: %s", cfg.Root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault path is not a directory: %s", cfg.Root)
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, err
	}

	printBanner(cfg, root)

	files, err := scan.Files(root, scan.Options{
		Extension:     cfg.Extension,
		ExtraExcludes: cfg.ExtraExcludes,
	})
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	fmt.Fprintf(out, "Found %d Markdown file(s) to scan.\n\n", len(files))
	if cfg.Verbose && len(files) > 0 {
		fmt.Fprintln(out, "Processing files:")
	}

	summary := &Summary{FilesScanned: len(files)}
	for _, path := range files {
		summary.add(processFile(cfg, root, path))
	}

	printSummary(cfg, root, summary)
	return summary, nil
}

// processFile 处理单个文件：解码 → 转换 → （备份）→ 原子写回。
// 任何一步失败都折叠为该文件的 FileResult，不向上抛。
func processFile(cfg *Config, root, path string) FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return fail(path, err)
	}

	content, codec, err := fileio.Decode(data)
	if err != nil {
		return fail(path, err)
	}

	converted, n := heading.Demote(content)
	setext := heading.CountSetextH1(content)

	if n == 0 {
		return FileResult{Path: path, SetextH1: setext, Status: StatusUnchanged}
	}

	if cfg.Verbose {
		rel := relPath(root, path)
		fmt.Fprintf(cfg.Output, "  %s: %d H1 heading(s) found\n", rel, n)
		if setext > 0 {
			fmt.Fprintf(cfg.Output, "    %d setext H1 heading(s) left as-is\n", setext)
		}
	}

	if !cfg.Write {
		return FileResult{Path: path, Conversions: n, SetextH1: setext, Status: StatusPreview}
	}

	if cfg.Backups {
		backupPath, err := fileio.Backup(path, root, time.Now())
		if err != nil {
			// 备份失败必须放弃写入：没有可证明完好的备份就不动原文件
			return fail(path, fmt.Errorf("backup failed: %w", err))
		}
		if cfg.Verbose {
			fmt.Fprintf(cfg.Output, "    Backup created: %s\n", filepath.Base(backupPath))
		}
	}

	// 写回沿用解码成功的那个编码
	encoded, err := codec.Encode(converted)
	if err != nil {
		return fail(path, fmt.Errorf("encode as %s failed: %w", codec.Name, err))
	}

	perm := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode()
	}
	if err := fileio.WriteAtomic(path, encoded, perm); err != nil {
		return fail(path, err)
	}

	return FileResult{Path: path, Conversions: n, SetextH1: setext, Status: StatusWritten}
}

// fail 记录单个文件的失败：留一条日志，折叠为错误结果，运行继续。
func fail(path string, err error) FileResult {
	Logger.Printf("%s: %v", path, err)
	return FileResult{Path: path, Status: StatusError, Err: err}
}

// printBanner 输出运行头与本次配置回显。
func printBanner(cfg *Config, root string) {
	out := cfg.Output
	sep := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(out, "\n%s\n", sep)
	fmt.Fprintln(out, "Markdown H1 -> H2 Converter")
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "Vault path: %s\n", root)
	if cfg.Write {
		fmt.Fprintln(out, "Mode: WRITE MODE")
		if cfg.Backups {
			fmt.Fprintln(out, "Backups: Enabled")
		} else {
			fmt.Fprintln(out, "Backups: Disabled")
		}
	} else {
		fmt.Fprintln(out, "Mode: DRY RUN (no files will be modified)")
	}
	if len(cfg.ExtraExcludes) > 0 {
		names := append([]string(nil), cfg.ExtraExcludes...)
		sort.Strings(names)
		fmt.Fprintf(out, "Extra excludes: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(out, "%s\n\n", sep)
}

// printSummary 输出末尾的汇总块。
func printSummary(cfg *Config, root string, s *Summary) {
	out := cfg.Output
	sep := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(out, "\n%s\n", sep)
	fmt.Fprintln(out, "SUMMARY")
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "Files scanned:      %d\n", s.FilesScanned)
	fmt.Fprintf(out, "Files with H1s:     %d\n", s.FilesChanged)
	fmt.Fprintf(out, "Total H1 headings:  %d\n", s.Conversions)
	if s.SetextH1 > 0 {
		fmt.Fprintf(out, "Setext H1 (kept):   %d\n", s.SetextH1)
	}

	switch {
	case !cfg.Write && s.FilesChanged > 0:
		fmt.Fprintln(out, "\nDRY RUN: No files were modified.")
		fmt.Fprintln(out, "Run with --write to apply changes.")
	case cfg.Write && s.FilesChanged > 0:
		fmt.Fprintf(out, "\n%d file(s) modified.\n", s.FilesChanged)
		if cfg.Backups {
			fmt.Fprintf(out, "Backups saved to: %s\n", filepath.Join(root, fileio.BackupDirName))
		}
	default:
		fmt.Fprintln(out, "\nNo H1 headings found. No changes needed.")
	}

	if len(s.Errors) > 0 {
		fmt.Fprintf(out, "\nErrors (%d):\n", len(s.Errors))
		for _, e := range s.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
	}
	fmt.Fprintf(out, "%s\n\n", sep)
}

// relPath 尽力给出相对 root 的路径，失败时退回原路径。
func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
