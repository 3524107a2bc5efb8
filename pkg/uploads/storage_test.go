package uploads

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/pkg/apperr"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	url, err := s.Save(fileHeader(t, "photo.png", []byte("png-bytes")))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, URLPrefix+"/"))
	require.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, URLPrefix+"/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, s.Remove(url))
	_, err = os.Stat(filepath.Join(dir, name))
	require.True(t, os.IsNotExist(err))
}

func TestSave_GeneratesUniqueNames(t *testing.T) {
	s := NewStorage(t.TempDir())

	a, err := s.Save(fileHeader(t, "same.jpg", []byte("a")))
	require.NoError(t, err)
	b, err := s.Save(fileHeader(t, "same.jpg", []byte("b")))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSave_RejectsNonImageExtension(t *testing.T) {
	s := NewStorage(t.TempDir())

	_, err := s.Save(fileHeader(t, "malware.exe", []byte("nope")))
	require.Error(t, err)
	require.Equal(t, apperr.Invalid, apperr.KindOf(err))
}

func TestRemove_MissingFileIsNotAnError(t *testing.T) {
	s := NewStorage(t.TempDir())
	require.NoError(t, s.Remove(URLPrefix+"/gone.png"))
}

func TestRemove_IgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	outside := filepath.Join(dir, "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	require.NoError(t, s.Remove(URLPrefix+"/../victim.txt"))
	_, err := os.Stat(outside)
	require.NoError(t, err, "file outside the upload dir must survive")
}
