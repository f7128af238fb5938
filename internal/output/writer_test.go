package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "eacsForAspace")

	files := []File{
		{Filename: "HuntJohn1740-1824.xml", Content: []byte("<eac-cpf/>")},
		{Filename: "FriendsHistoricalLibrary.xml", Content: []byte("<eac-cpf></eac-cpf>")},
	}

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, data)
	}
}

func TestWriteFileRejectsPaths(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"", "../escape.xml", "sub/dir.xml"} {
		err := WriteFile(File{Filename: name, Content: []byte("x")}, dir)
		assert.Error(t, err, name)
	}
}
