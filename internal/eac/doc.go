// Package eac converts SNAC constellations into EAC-CPF documents.
//
// A conversion is a fixed pipeline over one mutable element tree:
//   - NewDocument builds the namespaced <eac-cpf> shell
//   - MapControl appends <control> (record id, maintenance, sources)
//   - MapDescription appends <cpfDescription> (identity, dates, languages,
//     local descriptions, places, occupations, biogHist)
//   - Serialize renders the tree and restores raw angle brackets
//
// Text fields that may already hold markup go through Reconcile, which
// classifies them as plain text, paragraph markup or a complete element
// and either wraps or parses and splices them.
//
// ExtractName reads the display name back out of a finished document; it is
// what output file names are derived from.
//
// Converter ties the steps together and never returns a partial document.
package eac
