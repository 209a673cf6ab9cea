package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore 负责与本机磁盘文件系统的所有交互，图片二进制统一落在 baseDir 下。
type LocalStore struct {
	baseDir string
}

// NewLocalStore 是 LocalStore 的构造函数，启动时确保存储目录存在。
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("无法创建上传目录 '%s': %w", baseDir, err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save 把 src 的内容写入 baseDir 下名为 fileName 的文件，返回写入的字节数。
func (s *LocalStore) Save(src io.Reader, fileName string) (int64, error) {
	physicalPath := filepath.Join(s.baseDir, fileName)

	destFile, err := os.Create(physicalPath)
	if err != nil {
		return 0, fmt.Errorf("无法创建目标文件: %w", err)
	}
	defer destFile.Close()

	written, err := io.Copy(destFile, src)
	if err != nil {
		return 0, fmt.Errorf("写入文件内容失败: %w", err)
	}

	// 确保数据写入磁盘
	if err := destFile.Sync(); err != nil {
		return 0, fmt.Errorf("同步文件到磁盘失败: %w", err)
	}

	return written, nil
}

// Remove 删除 baseDir 下名为 fileName 的文件，文件不存在时视为成功。
func (s *LocalStore) Remove(fileName string) error {
	err := os.Remove(filepath.Join(s.baseDir, fileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除本地文件失败: %w", err)
	}
	return nil
}

// BaseDir 返回存储根目录，用于静态文件路由挂载。
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}
