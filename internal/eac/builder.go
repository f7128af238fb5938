package eac

import "github.com/beevik/etree"

// Namespaces declared on the <eac-cpf> root.
const (
	NamespaceEAC   = "urn:isbn:1-931666-33-4"
	NamespaceXLink = "https://www.w3.org/1999/xlink"
	NamespaceSNAC  = "http://socialarchive.iath.virginia.edu/"
)

// RootTag is the tag of the document element.
const RootTag = "eac-cpf"

// NewDocument returns an empty EAC-CPF document: an XML declaration and a
// root element carrying the default, xlink and snac namespaces.
func NewDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(RootTag)
	root.CreateAttr("xmlns", NamespaceEAC)
	root.CreateAttr("xmlns:xlink", NamespaceXLink)
	root.CreateAttr("xmlns:snac", NamespaceSNAC)

	return doc
}
