package eac

import (
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"snac2eac/internal/constellation"
)

func ptr(s string) *string { return &s }

func term(label string) *constellation.ControlledTerm {
	return &constellation.ControlledTerm{Label: label}
}

// minimalConstellation has exactly the required fields.
func minimalConstellation() *constellation.Constellation {
	return &constellation.Constellation{
		Ark:               ptr("http://n2t.net/ark:/99166/w6fn1kqp"),
		EntityType:        term("person"),
		NameEntries:       []constellation.NameEntry{{Original: ptr("Hunt, John, 1740-1824")}},
		MaintenanceStatus: term("revised"),
		MaintenanceAgency: ptr("SNAC"),
		MaintenanceEvents: []constellation.MaintenanceEvent{},
		Sources:           []constellation.Source{},
	}
}

func loadFixture(t *testing.T, name string) *constellation.Constellation {
	t.Helper()

	c, err := constellation.LoadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return c
}

func childTags(e *etree.Element) []string {
	var tags []string
	for _, child := range e.ChildElements() {
		tags = append(tags, child.Tag)
	}

	return tags
}

// describe runs MapDescription on a fresh document and returns <description>.
func describe(t *testing.T, c *constellation.Constellation) *etree.Element {
	t.Helper()

	doc := NewDocument()
	require.NoError(t, MapDescription(c, doc, nil))

	description := doc.FindElement("/eac-cpf/cpfDescription/description")
	require.NotNil(t, description)

	return description
}
