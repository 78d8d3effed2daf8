// Package svgextract parses SVG markup into the intermediate vector
// document (see svg2dxf/vectordoc). It reads <path> descriptions into
// typed segments, primitive shapes into typed shape values, and
// derives the categorized line/curve collections.
// Only the geometry subset is supported: group transforms and CSS
// styling are ignored, and fill/stroke attributes are carried as
// opaque strings.
package svgextract

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/svg2dxf/vectordoc"
)

// ErrorMode controls what happens when an element cannot be
// processed (typically a malformed path description).
type ErrorMode uint8

const (
	// IgnoreErrorMode skips the element silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips the element and logs a warning.
	WarnErrorMode
	// StrictErrorMode fails the whole document.
	StrictErrorMode
)

// cursor accumulates the document while walking the XML token stream.
type cursor struct {
	doc       *vectordoc.Document
	errorMode ErrorMode
}

// ReadDocumentStream extracts the vector document from SVG markup.
// name is recorded as the document's source file. errMode determines
// whether an element the extractor cannot handle is ignored, logged,
// or fails the read.
func ReadDocumentStream(stream io.Reader, name string, errMode ErrorMode) (*vectordoc.Document, error) {
	doc := &vectordoc.Document{
		File: name,
		Metadata: vectordoc.Metadata{
			ViewBox: vectordoc.NotSpecified,
			Width:   vectordoc.NotSpecified,
			Height:  vectordoc.NotSpecified,
		},
	}
	cursor := &cursor{doc: doc, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml document")
				}
				break
			}
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		seenTag = true
		// elements without geometry (g, defs, text, ...) are
		// structural only and are walked through silently
		ef, ok := elementFuncs[se.Name.Local]
		if !ok {
			continue
		}
		if err := ef(cursor, se.Attr); err != nil {
			return nil, err
		}
	}
	doc.Lines, doc.Curves = Categorize(doc.Paths, doc.Shapes)
	doc.UpdateSummary()
	return doc, nil
}

// ReadDocument extracts the vector document from the named SVG file.
func ReadDocument(svgFile string, errMode ErrorMode) (*vectordoc.Document, error) {
	fin, err := os.Open(svgFile)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, svgFile, errMode)
}
