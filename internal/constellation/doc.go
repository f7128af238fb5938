// Package constellation models SNAC constellation records as they arrive
// from the cooperative's JSON API.
//
// The SNAC schema is loose: nearly every field is optional and behaviour
// downstream depends on whether a key is present, not on whether its value
// is empty. Optional scalars are therefore pointers.
//
// Key types:
//   - Constellation: one agent record (person, corporate body or family)
//   - ControlledTerm: a vocabulary value, {id, term, description}
//   - Text: a JSON scalar that may be encoded as a string or a number
//
// Records are decoded with Parse or LoadFile and checked with Validate,
// which reports the first absent required field as a *MissingFieldError.
package constellation
