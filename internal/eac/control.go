package eac

import (
	"fmt"

	"github.com/beevik/etree"

	"snac2eac/internal/constellation"
)

// MapControl appends the <control> block for c to the root of doc.
//
// The block is assembled detached and attached only once complete, so on
// error doc is unchanged.
func MapControl(c *constellation.Constellation, doc *etree.Document) error {
	root := doc.Root()
	if root == nil {
		return ErrEmptyDocument
	}

	if err := c.ValidateControl(); err != nil {
		return err
	}

	control := etree.NewElement("control")

	control.CreateElement("recordId").SetText(*c.Ark)
	control.CreateElement("maintenanceStatus").SetText(c.MaintenanceStatus.Label)
	control.CreateElement("maintenanceAgency").CreateElement("agencyName").SetText(*c.MaintenanceAgency)

	// The target corpus is English; the declaration is not derived from the record.
	langDecl := control.CreateElement("languageDeclaration")
	lang := langDecl.CreateElement("language")
	lang.CreateAttr("languageCode", "eng")
	lang.SetText("English")

	script := langDecl.CreateElement("script")
	script.CreateAttr("scriptCode", "Latn")
	script.SetText("Latin")

	history := control.CreateElement("maintenanceHistory")
	for i := range c.MaintenanceEvents {
		addMaintenanceEvent(history, &c.MaintenanceEvents[i])
	}

	sources := control.CreateElement("sources")
	for i := range c.Sources {
		if err := addSource(sources, &c.Sources[i]); err != nil {
			return fmt.Errorf("sources[%d].text: %w", i, err)
		}
	}

	root.AddChild(control)

	return nil
}

func addMaintenanceEvent(history *etree.Element, ev *constellation.MaintenanceEvent) {
	event := history.CreateElement("maintenanceEvent")

	event.CreateElement("eventType").SetText(ev.EventType.Label)

	dateTime := event.CreateElement("eventDateTime")
	dateTime.SetText(*ev.EventDateTime)

	if ev.StandardDateTime != nil {
		dateTime.CreateAttr("standardDateTime", *ev.StandardDateTime)
	}

	event.CreateElement("agentType").SetText(ev.AgentType.Label)
	event.CreateElement("agent").SetText(*ev.Agent)

	if ev.EventDescription != nil {
		event.CreateElement("eventDescription").SetText(*ev.EventDescription)
	}
}

func addSource(sources *etree.Element, src *constellation.Source) error {
	source := etree.NewElement("source")

	if src.URI != nil {
		source.CreateAttr("xlink:href", *src.URI)
		source.CreateAttr("xlink:type", src.Type.Label)
	}

	if src.Citation != nil {
		source.CreateElement("sourceEntry").SetText(*src.Citation)
	}

	if src.Text != nil {
		if _, _, err := Reconcile(source, "descriptiveNote", *src.Text); err != nil {
			return err
		}
	}

	sources.AddChild(source)

	return nil
}
