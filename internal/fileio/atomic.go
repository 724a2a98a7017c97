package fileio

import (
	"os"
	"path/filepath"
)

// WriteAtomic 将 data 原子地写入 path。
//
// 在目标同目录创建临时文件（同卷才能保证 rename 原子），写满、
// 刷盘、关闭后 rename 覆盖目标。replace 完成前的任何失败都会
// 清理临时文件并返回错误，原文件保持原样。
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	// 目标权限：尽量与原文件一致
	_ = os.Chmod(tmpPath, perm)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
