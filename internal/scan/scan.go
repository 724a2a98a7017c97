// Package scan 负责在目录树中发现待处理的 Markdown 文件。
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExcludes 默认跳过的目录名（基名完全匹配，任意深度生效）。
var DefaultExcludes = []string{".obsidian", ".git", "node_modules", ".trash", ".DS_Store"}

// Options 为扫描的可选配置（最小必要）。
type Options struct {
	// Extension 目标文件扩展名，含点。默认 ".md"。
	Extension string
	// ExtraExcludes 调用方追加的目录名，与默认集合取并集。
	ExtraExcludes []string
}

// Files 递归枚举 root 下的全部合格文件，返回排序后的绝对路径。
//
// 合格条件：文件名以目标扩展名结尾、不以点开头，且相对路径上
// 没有任何一段是点开头目录或排除集合成员。被排除的目录在下降
// 前剪枝，不会进入其子树。
func Files(root string, opts Options) ([]string, error) {
	ext := opts.Extension
	if ext == "" {
		ext = ".md"
	}

	exclude := make(map[string]struct{}, len(DefaultExcludes)+len(opts.ExtraExcludes))
	for _, name := range DefaultExcludes {
		exclude[name] = struct{}{}
	}
	for _, name := range opts.ExtraExcludes {
		if name = strings.TrimSpace(name); name != "" {
			exclude[name] = struct{}{}
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 根目录读不了是配置级错误；子树的 I/O 失败只跳过
			// 该子树，其余文件照常枚举
			if path == root {
				return err
			}
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			// root 自身不参与排除判断，排除只作用于其下各级目录
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			if _, skip := exclude[name]; skip {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ext) || strings.HasPrefix(name, ".") {
			return nil
		}
		// 文件自身的名字也算一段路径，命中排除集合同样跳过
		if _, skip := exclude[name]; skip {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
