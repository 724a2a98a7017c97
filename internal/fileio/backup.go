package fileio

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BackupDirName 备份目录名，建在被扫描树的根下。
const BackupDirName = "_backups"

// timestampLayout 备份文件名中的时间戳，精确到秒。
const timestampLayout = "20060102_150405"

// Backup 在 root/_backups 下创建 path 的带时间戳副本。
//
// 副本按原文件相对 root 的目录层级存放，文件名为
// "<原名去扩展>_<YYYYMMDD_HHMMSS><扩展>"，同一文件不同秒的
// 备份互不冲突。字节、权限与修改时间一并保留。
// 返回副本路径；任何失败都意味着没有可证明完好的备份。
func Backup(path, root string, now time.Time) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		// root 之外的文件直接平放在备份根下
		rel = filepath.Base(path)
	}

	dir := filepath.Join(root, BackupDirName, filepath.Dir(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	dst := filepath.Join(dir, stem+"_"+now.Format(timestampLayout)+ext)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, info.Mode()); err != nil {
		return "", err
	}
	// 元数据：保留原修改时间
	_ = os.Chtimes(dst, now, info.ModTime())

	return dst, nil
}
