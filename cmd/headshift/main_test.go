package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestParseExcludes 逗号分隔解析，空白项丢弃
func TestParseExcludes(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"drafts", []string{"drafts"}},
		{"drafts,templates", []string{"drafts", "templates"}},
		{" drafts , templates ", []string{"drafts", "templates"}},
		{"a,,b", []string{"a", "b"}},
	}
	for _, c := range cases {
		got := parseExcludes(c.in)
		if len(got) != len(c.want) {
			t.Errorf("parseExcludes(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Errorf("parseExcludes(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

// TestRun_ExitClean 干净的运行退出码 0，与是否有改动无关
func TestRun_ExitClean(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.md"), []byte("# x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := run([]string{root}); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
}

// TestRun_ExitBadRoot 根目录无效退出码 1
func TestRun_ExitBadRoot(t *testing.T) {
	if code := run([]string{filepath.Join(t.TempDir(), "missing")}); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}

// TestRun_ExitMissingArg 缺少位置参数退出码 1
func TestRun_ExitMissingArg(t *testing.T) {
	if code := run(nil); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}

// TestRun_ExitPerFileError 有文件级错误时退出码 1，其余文件照常
func TestRun_ExitPerFileError(t *testing.T) {
	root := t.TempDir()
	// 悬空符号链接：被扫描收录但读取必然失败
	if err := os.Symlink(filepath.Join(root, "missing.md"), filepath.Join(root, "broken.md")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "good.md"), []byte("# x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := run([]string{root}); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}
