package constellation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Constellation is a single SNAC agent record.
type Constellation struct {
	ID                *Text              `json:"id,omitempty"`
	Ark               *string            `json:"ark,omitempty"`
	EntityType        *ControlledTerm    `json:"entityType,omitempty"`
	NameEntries       []NameEntry        `json:"nameEntries,omitempty"`
	MaintenanceStatus *ControlledTerm    `json:"maintenanceStatus,omitempty"`
	MaintenanceAgency *string            `json:"maintenanceAgency,omitempty"`
	MaintenanceEvents []MaintenanceEvent `json:"maintenanceEvents,omitempty"`
	Sources           []Source           `json:"sources,omitempty"`
	SameAsRelations   []SameAsRelation   `json:"sameAsRelations,omitempty"`
	Dates             []DateEntry        `json:"dates,omitempty"`
	LanguagesUsed     []LanguageUsed     `json:"languagesUsed,omitempty"`
	Genders           []TermEntry        `json:"genders,omitempty"`
	Subjects          []TermEntry        `json:"subjects,omitempty"`
	Occupations       []TermEntry        `json:"occupations,omitempty"`
	Places            []Place            `json:"places,omitempty"`
	BiogHists         []BiogHist         `json:"biogHists,omitempty"`
}

// ControlledTerm is a value drawn from one of SNAC's vocabularies.
// The human-readable label lives under the JSON key "term".
type ControlledTerm struct {
	ID          Text   `json:"id,omitempty"`
	Label       string `json:"term"`
	Description string `json:"description,omitempty"`
}

// NameEntry is one name variant. Only Original is migrated.
type NameEntry struct {
	Original   *string         `json:"original,omitempty"`
	Components []NameComponent `json:"components,omitempty"`
}

// NameComponent is one parsed piece of a name (surname, forename, ...).
type NameComponent struct {
	Text string          `json:"text"`
	Type *ControlledTerm `json:"type,omitempty"`
}

// MaintenanceEvent is one entry of the record's maintenance log.
type MaintenanceEvent struct {
	EventType        *ControlledTerm `json:"eventType,omitempty"`
	EventDateTime    *string         `json:"eventDateTime,omitempty"`
	StandardDateTime *string         `json:"standardDateTime,omitempty"`
	AgentType        *ControlledTerm `json:"agentType,omitempty"`
	Agent            *string         `json:"agent,omitempty"`
	EventDescription *string         `json:"eventDescription,omitempty"`
}

// Source is a bibliographic citation backing the record.
type Source struct {
	URI      *string         `json:"uri,omitempty"`
	Type     *ControlledTerm `json:"type,omitempty"`
	Citation *string         `json:"citation,omitempty"`
	Text     *string         `json:"text,omitempty"`
}

// SameAsRelation points at the same entity in an external authority.
type SameAsRelation struct {
	URI  *string         `json:"uri,omitempty"`
	Type *ControlledTerm `json:"type,omitempty"`
}

// DateEntry is either a single date or a range. A range is any entry that
// carries the "toDate" key.
type DateEntry struct {
	FromDate         *string         `json:"fromDate,omitempty"`
	FromDateOriginal *string         `json:"fromDateOriginal,omitempty"`
	FromType         *ControlledTerm `json:"fromType,omitempty"`
	ToDate           *string         `json:"toDate,omitempty"`
	ToDateOriginal   *string         `json:"toDateOriginal,omitempty"`
	ToType           *ControlledTerm `json:"toType,omitempty"`

	// HasToDate is set by decoding when the "toDate" key is present, null
	// included.
	HasToDate bool `json:"-"`
}

// IsRange reports whether the entry describes a date range.
func (d DateEntry) IsRange() bool {
	return d.HasToDate || d.ToDate != nil
}

// UnmarshalJSON implements json.Unmarshaler and records whether "toDate"
// appears in the object.
func (d *DateEntry) UnmarshalJSON(data []byte) error {
	type plain DateEntry

	var entry plain
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	_, entry.HasToDate = keys["toDate"]
	*d = DateEntry(entry)

	return nil
}

// LanguageUsed pairs a language with its script. For both terms Label is
// the ISO code and Description the display text.
type LanguageUsed struct {
	Language *ControlledTerm `json:"language,omitempty"`
	Script   *ControlledTerm `json:"script,omitempty"`
}

// TermEntry wraps a controlled term; used for genders, subjects and occupations.
type TermEntry struct {
	Term *ControlledTerm `json:"term,omitempty"`
}

// Place is a location associated with the entity.
type Place struct {
	Original *string   `json:"original,omitempty"`
	Note     *string   `json:"note,omitempty"`
	Geoplace *Geoplace `json:"geoplace,omitempty"`
}

// Geoplace is the structured geographic form of a place.
type Geoplace struct {
	Name        *string `json:"name,omitempty"`
	Latitude    *Text   `json:"latitude,omitempty"`
	Longitude   *Text   `json:"longitude,omitempty"`
	CountryCode *Text   `json:"countryCode,omitempty"`
}

// BiogHist is a biographical or historical narrative.
type BiogHist struct {
	Text *string `json:"text,omitempty"`
}

// Text is a JSON scalar kept as its textual form. SNAC is inconsistent about
// quoting ids and coordinates, so both "42" and 42 decode to "42".
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*t = Text(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}

	*t = Text(n.String())

	return nil
}

// String returns the text.
func (t Text) String() string {
	return string(t)
}

// Value dereferences an optional string, returning "" for nil.
func Value(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// LabelOf returns the label of an optional term, or "" for nil.
func LabelOf(t *ControlledTerm) string {
	if t == nil {
		return ""
	}

	return t.Label
}

// RecordID returns a short identifier for log and diagnostic messages:
// the ark when present, otherwise the SNAC id.
func (c *Constellation) RecordID() string {
	if c.Ark != nil && *c.Ark != "" {
		return *c.Ark
	}

	if c.ID != nil {
		return c.ID.String()
	}

	return ""
}
