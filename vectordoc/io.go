package vectordoc

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Validate checks the summary block against the collections.
// A mismatch means the document was produced by an incompatible
// writer or was corrupted in transit; it fails the whole document.
func (d *Document) Validate() error {
	want := Summary{
		TotalPaths:  len(d.Paths),
		TotalShapes: len(d.Shapes),
		TotalLines:  len(d.Lines),
		TotalCurves: len(d.Curves),
	}
	if d.Summary != want {
		return errors.Errorf("summary mismatch: recorded %+v, collections %+v", d.Summary, want)
	}
	return nil
}

// Read decodes and validates a document from the given reader.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding vector document")
	}
	if err := doc.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating vector document")
	}
	return &doc, nil
}

// Load reads a document from the named file.
func Load(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "loading vector document")
	}
	defer f.Close()
	doc, err := Read(f)
	return doc, errors.Wrapf(err, "in %s", filename)
}

// normalize replaces nil collections with empty ones, so that they
// serialize as arrays, never as null.
func (d *Document) normalize() {
	if d.Paths == nil {
		d.Paths = []Path{}
	}
	if d.Shapes == nil {
		d.Shapes = Shapes{}
	}
	if d.Lines == nil {
		d.Lines = []CategorizedLine{}
	}
	if d.Curves == nil {
		d.Curves = []CategorizedCurve{}
	}
}

// Write refreshes the summary and encodes the document,
// two-space indented. Writing the same document twice yields
// byte-identical output.
func (d *Document) Write(w io.Writer) error {
	d.normalize()
	d.UpdateSummary()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(d), "encoding vector document")
}

// Save writes the document to the named file.
func (d *Document) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "saving vector document")
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "saving %s", filename)
}
