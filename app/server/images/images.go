// Package images 保存上传的照片，并在读取时为缺失的照片选择默认图片。
package images

import (
	"campo-cidade/app/server/constants"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Class 决定使用哪一张默认图片
type Class int

const (
	ClassUser Class = iota
	ClassGarden
)

type Store struct {
	uploadDir string
	imagesDir string
}

// New 创建目录，并在默认图片不存在时放置一个空的占位文件
func New(uploadDir string, imagesDir string) (*Store, error) {
	s := &Store{
		uploadDir: uploadDir,
		imagesDir: imagesDir,
	}

	for _, dir := range []string{uploadDir, imagesDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	for _, name := range []string{constants.DefaultUserImageName, constants.DefaultGardenImageName} {
		p := filepath.Join(imagesDir, name)
		if _, err := os.Stat(p); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat default image %s: %w", p, err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			return nil, fmt.Errorf("failed to create default image %s: %w", p, err)
		}
	}

	return s, nil
}

func (s *Store) UploadDir() string {
	return s.uploadDir
}

func (s *Store) ImagesDir() string {
	return s.imagesDir
}

// SaveUserPhoto 写入 user_<id>.jpg ，返回保存的路径
func (s *Store) SaveUserPhoto(userID uint, r io.Reader) (string, error) {
	return s.save(fmt.Sprintf(constants.UserPhotoName, userID), r)
}

// SaveGardenPhoto 写入 horta_<key>.jpg ，返回保存的路径
func (s *Store) SaveGardenPhoto(key uint, r io.Reader) (string, error) {
	return s.save(fmt.Sprintf(constants.GardenPhotoName, key), r)
}

func (s *Store) save(name string, r io.Reader) (string, error) {
	p := filepath.Join(s.uploadDir, name)

	// 直接覆盖旧文件
	f, err := os.OpenFile(p, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", p, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", p, err)
	}

	return p, nil
}

func (s *Store) Default(class Class) string {
	switch class {
	case ClassUser:
		return filepath.Join(s.imagesDir, constants.DefaultUserImageName)
	default:
		return filepath.Join(s.imagesDir, constants.DefaultGardenImageName)
	}
}

// Resolve 返回可以展示的路径：路径为空、文件不存在或文件为空时使用默认图片
func (s *Store) Resolve(p string, class Class) string {
	if p == "" {
		return s.Default(class)
	}

	info, err := os.Stat(p)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return s.Default(class)
	}

	return p
}

// URL 把 Resolve 返回的路径映射到静态文件路由 /uploads 和 /imagens 下，不在两个目录中的路径返回空字符串
func (s *Store) URL(p string) string {
	for _, m := range []struct {
		dir    string
		prefix string
	}{
		{s.uploadDir, "/" + constants.UploadDir},
		{s.imagesDir, "/" + constants.ImagesDir},
	} {
		rel, err := filepath.Rel(m.dir, p)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		return path.Join(m.prefix, filepath.ToSlash(rel))
	}

	return ""
}
