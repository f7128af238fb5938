package constellation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func term(label string) *ControlledTerm { return &ControlledTerm{Label: label} }

func validConstellation() *Constellation {
	return &Constellation{
		Ark:               ptr("http://n2t.net/ark:/99166/w6fn1kqp"),
		EntityType:        term("person"),
		NameEntries:       []NameEntry{{Original: ptr("Hunt, John, 1740-1824")}},
		MaintenanceStatus: term("revised"),
		MaintenanceAgency: ptr("SNAC"),
		MaintenanceEvents: []MaintenanceEvent{{
			EventType:     term("revised"),
			EventDateTime: ptr("2021-06-01"),
			AgentType:     term("human"),
			Agent:         ptr("jtruitt"),
		}},
		Sources: []Source{{URI: ptr("http://example.org/src"), Type: term("simple")}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Constellation)
		field  string
	}{
		{name: "valid", mutate: func(*Constellation) {}},
		{name: "ark", mutate: func(c *Constellation) { c.Ark = nil }, field: "ark"},
		{name: "status", mutate: func(c *Constellation) { c.MaintenanceStatus = nil }, field: "maintenanceStatus"},
		{name: "agency", mutate: func(c *Constellation) { c.MaintenanceAgency = nil }, field: "maintenanceAgency"},
		{name: "events", mutate: func(c *Constellation) { c.MaintenanceEvents = nil }, field: "maintenanceEvents"},
		{
			name:   "event agent",
			mutate: func(c *Constellation) { c.MaintenanceEvents[0].Agent = nil },
			field:  "maintenanceEvents[0].agent",
		},
		{name: "sources", mutate: func(c *Constellation) { c.Sources = nil }, field: "sources"},
		{
			name:   "source type with uri",
			mutate: func(c *Constellation) { c.Sources[0].Type = nil },
			field:  "sources[0].type",
		},
		{
			name:   "source type without uri",
			mutate: func(c *Constellation) { c.Sources[0] = Source{Citation: ptr("Journal")} },
		},
		{name: "entity type", mutate: func(c *Constellation) { c.EntityType = nil }, field: "entityType"},
		{name: "names", mutate: func(c *Constellation) { c.NameEntries = []NameEntry{} }, field: "nameEntries"},
		{
			name:   "name original",
			mutate: func(c *Constellation) { c.NameEntries[0].Original = nil },
			field:  "nameEntries[0].original",
		},
		{
			name:   "same as uri",
			mutate: func(c *Constellation) { c.SameAsRelations = []SameAsRelation{{}} },
			field:  "sameAsRelations[0].uri",
		},
		{
			name: "script",
			mutate: func(c *Constellation) {
				c.LanguagesUsed = []LanguageUsed{{Language: term("eng")}}
			},
			field: "languagesUsed[0].script",
		},
		{
			name:   "occupation term",
			mutate: func(c *Constellation) { c.Occupations = []TermEntry{{Term: term("Diarist")}, {}} },
			field:  "occupations[1].term",
		},
		{
			name:   "geoplace name",
			mutate: func(c *Constellation) { c.Places = []Place{{Geoplace: &Geoplace{}}} },
			field:  "places[0].geoplace.name",
		},
		{
			name:   "place without any form",
			mutate: func(c *Constellation) { c.Places = []Place{{}} },
		},
		{
			name:   "biog text",
			mutate: func(c *Constellation) { c.BiogHists = []BiogHist{{}} },
			field:  "biogHists[0].text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConstellation()
			tt.mutate(c)

			err := c.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingRequiredField))

			var mfe *MissingFieldError
			require.ErrorAs(t, err, &mfe)
			assert.Equal(t, tt.field, mfe.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	var c *Constellation

	assert.ErrorIs(t, c.Validate(), ErrMissingRequiredField)
	assert.ErrorIs(t, c.ValidateDescription(), ErrMissingRequiredField)
}
