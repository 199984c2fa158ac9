// Package reader adapts the external PDF-layout decoder to the line-oriented
// view the rest of the library consumes.
//
// The heavy lifting of PDF structure parsing (xref tables, content streams,
// font programs) belongs to github.com/ledongthuc/pdf. This package's job is
// reassembly: the decoder reports individually positioned text items, and
// reader groups them into visual lines by baseline proximity, orders them into
// reading order, and splits each line into glyph runs wherever the font name
// or size changes.
//
// Typical usage decodes one page at a time:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	for n := 1; n <= r.NumPages(); n++ {
//	    page, err := r.DecodePage(n)
//	    // ...
//	}
package reader
