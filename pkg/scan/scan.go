// Package scan finds mul(X,Y) instructions in corrupted memory text and sums
// their products, honouring do() and don't() toggles.
//
// Evaluation runs three pure steps in order: IndexToggles locates the
// markers, FilterEnabled keeps the enabled text and FindMuls extracts the
// instructions from what is left.
package scan

// Document is one body of input text.
type Document struct {
	Name string
	Text string
}

// Options controls how a document is evaluated.
type Options struct {
	// LiteralMarkers matches do() and don't() as plain substrings, so the
	// tail of "undo()" also re-enables instructions.
	LiteralMarkers bool

	// IgnoreToggles sums every instruction in the document.
	IgnoreToggles bool
}

// Result holds the intermediate and final values of one evaluation.
type Result struct {
	Document Document
	Marks    []ToggleMark
	Enabled  string
	Matches  []Match // offsets are relative to Enabled
	Sum      int64
}

// Evaluate runs the toggle indexer, the section filter and the instruction
// scanner over doc.
func Evaluate(doc Document, opts Options) Result {
	res := Result{Document: doc, Enabled: doc.Text}
	if !opts.IgnoreToggles {
		res.Marks = IndexToggles(doc.Text, opts)
		res.Enabled = FilterEnabled(doc.Text, res.Marks)
	}
	res.Matches = FindMuls(res.Enabled)
	res.Sum = SumProducts(res.Matches)
	return res
}
