package jsonschema

// OutputFormat selects the shape of a validation result tree.
type OutputFormat string

const (
	// OutputFlag reports only a top-level boolean plus an optional error; it is
	// the only format under which keyword evaluation may short-circuit.
	OutputFlag OutputFormat = "flag"
	// OutputBasic reports a flat list of {valid, instance location, schema
	// location, error}.
	OutputBasic OutputFormat = "basic"
	// OutputDetailed nests results along the schema tree.
	OutputDetailed OutputFormat = "detailed"
	// OutputVerbose nests results along the schema tree like OutputDetailed but
	// retains annotations and "ignored" keyword markers that detailed omits.
	OutputVerbose OutputFormat = "verbose"
)

// Draft selects which JSON Schema draft a document is validated as.
type Draft string

const (
	DraftUnspecified Draft = ""
	Draft6           Draft = "draft6"
	Draft7           Draft = "draft7"
	Draft2019_09     Draft = "draft2019-09"
	Draft2020_12     Draft = "draft2020-12"
)

// Options configures a single top-level Validate call.
type Options struct {
	// OutputFormat controls the shape of the returned result and whether
	// short-circuiting is permitted (only under OutputFlag).
	OutputFormat OutputFormat
	// ValidatingAs pins the draft the schema is interpreted under. Leaving it
	// DraftUnspecified defers to the schema's own "$schema" keyword.
	ValidatingAs Draft
	// LogIndentLevel is the indentation width used when a caller renders the
	// result tree as text; it has no effect on evaluation itself.
	LogIndentLevel int
	// RequireFormatValidation forces "format" to be asserted even for drafts
	// where it is an annotation-only vocabulary by default.
	RequireFormatValidation bool
	// DefaultBaseURI is used to resolve relative references when the schema
	// carries no "$id" of its own.
	DefaultBaseURI string
}

// DefaultOptions returns the options used when Validate is called without an
// explicit Options value: detailed output, no pinned draft, no forced format
// assertion.
func DefaultOptions() *Options {
	return &Options{OutputFormat: OutputDetailed}
}

func (o *Options) shortCircuitAllowed() bool {
	return o != nil && o.OutputFormat == OutputFlag
}
