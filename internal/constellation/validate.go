package constellation

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredField is matched by every *MissingFieldError.
var ErrMissingRequiredField = errors.New("missing required field")

// MissingFieldError names the JSON path of an absent required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, e.Field)
}

// Is makes errors.Is(err, ErrMissingRequiredField) succeed.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

func missing(format string, args ...any) error {
	return &MissingFieldError{Field: fmt.Sprintf(format, args...)}
}

// Validate checks every field the EAC-CPF mapping cannot do without.
func (c *Constellation) Validate() error {
	if err := c.ValidateControl(); err != nil {
		return err
	}

	return c.ValidateDescription()
}

// ValidateControl checks the fields needed for the <control> block.
func (c *Constellation) ValidateControl() error {
	if c == nil {
		return missing("constellation")
	}

	if c.Ark == nil {
		return missing("ark")
	}

	if c.MaintenanceStatus == nil {
		return missing("maintenanceStatus")
	}

	if c.MaintenanceAgency == nil {
		return missing("maintenanceAgency")
	}

	if c.MaintenanceEvents == nil {
		return missing("maintenanceEvents")
	}

	for i, ev := range c.MaintenanceEvents {
		switch {
		case ev.EventType == nil:
			return missing("maintenanceEvents[%d].eventType", i)
		case ev.EventDateTime == nil:
			return missing("maintenanceEvents[%d].eventDateTime", i)
		case ev.AgentType == nil:
			return missing("maintenanceEvents[%d].agentType", i)
		case ev.Agent == nil:
			return missing("maintenanceEvents[%d].agent", i)
		}
	}

	if c.Sources == nil {
		return missing("sources")
	}

	for i, src := range c.Sources {
		if src.URI != nil && src.Type == nil {
			return missing("sources[%d].type", i)
		}
	}

	return nil
}

// ValidateDescription checks the fields needed for the <cpfDescription> block.
func (c *Constellation) ValidateDescription() error {
	if c == nil {
		return missing("constellation")
	}

	if c.Ark == nil {
		return missing("ark")
	}

	if c.EntityType == nil {
		return missing("entityType")
	}

	if len(c.NameEntries) == 0 {
		return missing("nameEntries")
	}

	if c.NameEntries[0].Original == nil {
		return missing("nameEntries[0].original")
	}

	for i, rel := range c.SameAsRelations {
		if rel.URI == nil {
			return missing("sameAsRelations[%d].uri", i)
		}
	}

	for i, lang := range c.LanguagesUsed {
		if lang.Language == nil {
			return missing("languagesUsed[%d].language", i)
		}

		if lang.Script == nil {
			return missing("languagesUsed[%d].script", i)
		}
	}

	if err := validateTerms("genders", c.Genders); err != nil {
		return err
	}

	if err := validateTerms("subjects", c.Subjects); err != nil {
		return err
	}

	if err := validateTerms("occupations", c.Occupations); err != nil {
		return err
	}

	for i, p := range c.Places {
		if p.Geoplace != nil && p.Geoplace.Name == nil {
			return missing("places[%d].geoplace.name", i)
		}
	}

	if len(c.BiogHists) > 0 && c.BiogHists[0].Text == nil {
		return missing("biogHists[0].text")
	}

	return nil
}

func validateTerms(field string, entries []TermEntry) error {
	for i, e := range entries {
		if e.Term == nil {
			return missing("%s[%d].term", field, i)
		}
	}

	return nil
}
