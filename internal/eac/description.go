package eac

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"snac2eac/internal/constellation"
	"snac2eac/internal/diagnostic"
)

// MapDescription appends the <cpfDescription> block for c to the root of doc.
// Non-fatal problems and known limitations are recorded in diags, which may
// be nil. On error doc is unchanged.
func MapDescription(c *constellation.Constellation, doc *etree.Document, diags *diagnostic.Diagnostics) error {
	root := doc.Root()
	if root == nil {
		return ErrEmptyDocument
	}

	if err := c.ValidateDescription(); err != nil {
		return err
	}

	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	m := &descriptionMapper{c: c, diags: diags, record: c.RecordID()}

	cpf := etree.NewElement("cpfDescription")
	m.identity(cpf)

	description := cpf.CreateElement("description")
	if err := m.description(description); err != nil {
		return err
	}

	root.AddChild(cpf)

	return nil
}

type descriptionMapper struct {
	c      *constellation.Constellation
	diags  *diagnostic.Diagnostics
	record string
}

func (m *descriptionMapper) identity(cpf *etree.Element) {
	identity := cpf.CreateElement("identity")
	identity.CreateElement("entityType").SetText(m.c.EntityType.Label)

	// Only the unparsed display form is carried over.
	name := m.c.NameEntries[0]
	identity.CreateElement("nameEntry").CreateElement("part").SetText(*name.Original)

	if len(name.Components) > 0 {
		m.diags.AddInfo(diagnostic.CodeNameComponents,
			fmt.Sprintf("%d parsed name components not migrated", len(name.Components)),
			m.record, "nameEntries[0].components")
	}

	for _, rel := range m.c.SameAsRelations {
		identity.CreateElement("entityId").SetText(*rel.URI)
	}

	// SNAC itself is always listed as an authority.
	identity.CreateElement("entityId").SetText(*m.c.Ark)
}

func (m *descriptionMapper) description(description *etree.Element) error {
	m.existDates(description)

	if err := attachOrWrap(description, "languagesUsed", m.c.LanguagesUsed, buildLanguageUsed); err != nil {
		return err
	}

	m.localDescriptions(description)

	if err := m.places(description); err != nil {
		return err
	}

	if err := attachOrWrap(description, "occupations", m.c.Occupations, buildOccupation); err != nil {
		return err
	}

	return m.biogHist(description)
}

func (m *descriptionMapper) existDates(description *etree.Element) {
	if len(m.c.Dates) == 0 {
		return
	}

	if extra := len(m.c.Dates) - 1; extra > 0 {
		m.diags.AddInfo(diagnostic.CodeExtraDates,
			fmt.Sprintf("%d additional date entries dropped", extra), m.record, "dates")
	}

	d := m.c.Dates[0]
	existDates := description.CreateElement("existDates")

	if !d.IsRange() {
		setDate(existDates.CreateElement("date"), d.FromDateOriginal, d.FromDate, d.FromType)
		return
	}

	dateRange := existDates.CreateElement("dateRange")
	setDate(dateRange.CreateElement("fromDate"), d.FromDateOriginal, d.FromDate, d.FromType)

	// toDate@localType is keyed on toType but takes the fromType label.
	var toType *constellation.ControlledTerm
	if d.ToType != nil {
		toType = d.FromType
	}

	setDate(dateRange.CreateElement("toDate"), d.ToDateOriginal, d.ToDate, toType)
}

func setDate(el *etree.Element, original, standard *string, typ *constellation.ControlledTerm) {
	if original != nil {
		el.SetText(*original)
	}

	if standard != nil {
		el.CreateAttr("standardDate", *standard)
	}

	if typ != nil {
		el.CreateAttr("localType", typ.Label)
	}
}

func buildLanguageUsed(_ int, l constellation.LanguageUsed) (*etree.Element, error) {
	used := etree.NewElement("languageUsed")

	language := used.CreateElement("language")
	language.CreateAttr("languageCode", l.Language.Label)
	language.SetText(l.Language.Description)

	script := used.CreateElement("script")
	script.CreateAttr("scriptCode", l.Script.Label)
	script.SetText(l.Script.Description)

	return used, nil
}

func (m *descriptionMapper) localDescriptions(description *etree.Element) {
	if len(m.c.Genders) == 0 && len(m.c.Subjects) == 0 {
		return
	}

	local := description.CreateElement("localDescriptions")

	add := func(localType string, entries []constellation.TermEntry) {
		for _, e := range entries {
			ld := local.CreateElement("localDescription")
			ld.CreateAttr("localType", localType)
			ld.CreateElement("term").SetText(e.Term.Label)
		}
	}

	add("gender", m.c.Genders)
	add("associatedSubject", m.c.Subjects)
}

func (m *descriptionMapper) places(description *etree.Element) error {
	err := attachOrWrap(description, "places", m.c.Places, buildPlace)

	var pe *placeError
	if errors.As(err, &pe) {
		skipped := len(m.c.Places) - pe.index
		m.diags.AddWarning(diagnostic.CodeUnmappablePlace,
			fmt.Sprintf("could not interpret place metadata; %d places skipped", skipped),
			m.record, fmt.Sprintf("places[%d]", pe.index))

		return nil
	}

	return err
}

func buildPlace(i int, p constellation.Place) (*etree.Element, error) {
	place := etree.NewElement("place")

	if p.Note != nil {
		if _, _, err := Reconcile(place, "descriptiveNote", *p.Note); err != nil {
			return nil, fmt.Errorf("places[%d].note: %w", i, err)
		}
	}

	entry := place.CreateElement("placeEntry")

	switch {
	case p.Geoplace != nil:
		geo := p.Geoplace
		entry.SetText(*geo.Name)

		if geo.Latitude != nil && geo.Longitude != nil {
			entry.CreateAttr("latitude", geo.Latitude.String())
			entry.CreateAttr("longitude", geo.Longitude.String())
		}

		if geo.CountryCode != nil {
			entry.CreateAttr("countryCode", geo.CountryCode.String())
		}
	case p.Original != nil:
		entry.SetText(*p.Original)
	default:
		return nil, &placeError{index: i}
	}

	return place, nil
}

func buildOccupation(_ int, o constellation.TermEntry) (*etree.Element, error) {
	occupation := etree.NewElement("occupation")
	occupation.CreateElement("term").SetText(o.Term.Label)

	return occupation, nil
}

// biogHist is the last step of description mapping. A narrative that is
// already a complete <biogHist> element is spliced and nothing else is
// wrapped around it.
func (m *descriptionMapper) biogHist(description *etree.Element) error {
	if len(m.c.BiogHists) == 0 {
		return nil
	}

	if extra := len(m.c.BiogHists) - 1; extra > 0 {
		m.diags.AddInfo(diagnostic.CodeExtraBiogHists,
			fmt.Sprintf("%d additional biogHists dropped", extra), m.record, "biogHists")
	}

	if _, _, err := Reconcile(description, "biogHist", *m.c.BiogHists[0].Text); err != nil {
		return fmt.Errorf("biogHists[0].text: %w", err)
	}

	return nil
}
