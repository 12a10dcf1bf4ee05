// Package parsers selects a per-format file parser by extension.
//
// Supported extensions: .pdf, .docx, .md, .pptx. Anything else is rejected
// with domain.ErrUnsupportedFormat naming the extension.
package parsers
