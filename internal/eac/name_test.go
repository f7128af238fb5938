package eac

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNameRoundTrip(t *testing.T) {
	c := minimalConstellation()
	doc := NewDocument()
	require.NoError(t, MapControl(c, doc))
	require.NoError(t, MapDescription(c, doc, nil))

	name, err := ExtractName(doc)
	require.NoError(t, err)
	assert.Equal(t, "Hunt, John, 1740-1824", name)

	out, err := Serialize(doc, SerializeOptions{Indent: 2})
	require.NoError(t, err)

	reread, err := ReadDocument(bytes.NewReader(out))
	require.NoError(t, err)

	name, err = ExtractName(reread)
	require.NoError(t, err)
	assert.Equal(t, "Hunt, John, 1740-1824", name)
}

func TestExtractNameDepthFirst(t *testing.T) {
	// A breadth-first search would find the shallow <part> first.
	doc := etree.NewDocument()
	root := doc.CreateElement("root")
	root.CreateElement("a").CreateElement("b").CreateElement("part").SetText("deep")
	root.CreateElement("part").SetText("shallow")

	name, err := ExtractName(doc)
	require.NoError(t, err)
	assert.Equal(t, "deep", name)
}

func TestExtractNameNotFound(t *testing.T) {
	_, err := ExtractName(NewDocument())
	require.ErrorIs(t, err, ErrNameNotFound)

	_, err = ExtractName(nil)
	require.ErrorIs(t, err, ErrNameNotFound)
}

func TestReadDocumentInvalid(t *testing.T) {
	_, err := ReadDocument(strings.NewReader("<eac-cpf><control></eac-cpf>"))
	require.Error(t, err)
}
