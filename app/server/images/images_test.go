package images

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	root := t.TempDir()
	s, err := New(filepath.Join(root, "uploads"), filepath.Join(root, "imagens"))
	require.NoError(t, err)
	return s
}

func TestNew_CreatesPlaceholders(t *testing.T) {
	s := newStore(t)

	for _, p := range []string{s.Default(ClassUser), s.Default(ClassGarden)} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	}
	assert.Equal(t, "default-user.jpg", filepath.Base(s.Default(ClassUser)))
	assert.Equal(t, "default-horta.jpg", filepath.Base(s.Default(ClassGarden)))
}

func TestNew_KeepsExistingDefaults(t *testing.T) {
	root := t.TempDir()
	imagesDir := filepath.Join(root, "imagens")
	require.NoError(t, os.MkdirAll(imagesDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(imagesDir, "default-horta.jpg"), []byte("jpeg"), 0644))

	_, err := New(filepath.Join(root, "uploads"), imagesDir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(imagesDir, "default-horta.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), content)
}

func TestSave_DeterministicPathOverwrites(t *testing.T) {
	s := newStore(t)

	p1, err := s.SaveGardenPhoto(3, strings.NewReader("first version"))
	require.NoError(t, err)
	p2, err := s.SaveGardenPhoto(3, strings.NewReader("v2"))
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, filepath.Join(s.UploadDir(), "horta_3.jpg"), p2)
	content, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(content))

	up, err := s.SaveUserPhoto(3, strings.NewReader("me"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.UploadDir(), "user_3.jpg"), up)
}

func TestSave_FailsWhenDirectoryMissing(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.RemoveAll(s.UploadDir()))

	_, err := s.SaveUserPhoto(1, strings.NewReader("x"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	s := newStore(t)

	valid, err := s.SaveGardenPhoto(1, strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	empty, err := s.SaveGardenPhoto(2, strings.NewReader(""))
	require.NoError(t, err)

	tests := []struct {
		name  string
		path  string
		class Class
		want  string
	}{
		{"empty path user", "", ClassUser, s.Default(ClassUser)},
		{"empty path garden", "", ClassGarden, s.Default(ClassGarden)},
		{"missing file", filepath.Join(s.UploadDir(), "horta_99.jpg"), ClassGarden, s.Default(ClassGarden)},
		{"zero length file", empty, ClassGarden, s.Default(ClassGarden)},
		{"zero length user", empty, ClassUser, s.Default(ClassUser)},
		{"directory", s.UploadDir(), ClassUser, s.Default(ClassUser)},
		{"valid file", valid, ClassGarden, valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Resolve(tt.path, tt.class))
		})
	}
}

func TestURL(t *testing.T) {
	s := newStore(t)

	saved, err := s.SaveUserPhoto(7, strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/user_7.jpg", s.URL(saved))
	assert.Equal(t, "/imagens/default-horta.jpg", s.URL(s.Default(ClassGarden)))
	assert.Empty(t, s.URL(filepath.Join(t.TempDir(), "elsewhere.jpg")))
	assert.Empty(t, s.URL(s.UploadDir()))
}
