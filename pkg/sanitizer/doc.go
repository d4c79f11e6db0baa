// Package sanitizer normalises user input before it is validated, stored or logged.
//
// Helpers are plain string functions and can be chained with Apply or stored
// as a pipeline with Compose:
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.NormalizeWhitespace)
//	name := clean("  Ana \t Souza\n") // "Ana Souza"
//
// Identifiers are reduced to their digits for storage (Digits, NormalizePhone)
// and rendered back with FormatCPF. MaskCPF and MaskEmail produce values that
// are safe to write to logs.
//
// None of the helpers returns an error; on unexpected input they fall back to
// the input itself or to a fully masked value.
package sanitizer
