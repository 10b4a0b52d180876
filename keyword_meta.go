package jsonschema

import "strings"

// vocabCore, vocabApplicator, etc. name the 2020-12 vocabulary URIs a keyword
// belongs to. Earlier drafts predate `$vocabulary` and are treated as carrying
// every vocabulary implicitly.
const (
	vocabCore             = "https://json-schema.org/draft/2020-12/vocab/core"
	vocabApplicator       = "https://json-schema.org/draft/2020-12/vocab/applicator"
	vocabValidation       = "https://json-schema.org/draft/2020-12/vocab/validation"
	vocabMetaData         = "https://json-schema.org/draft/2020-12/vocab/meta-data"
	vocabFormatAnnotation = "https://json-schema.org/draft/2020-12/vocab/format-annotation"
	vocabContent          = "https://json-schema.org/draft/2020-12/vocab/content"
	vocabUnevaluated      = "https://json-schema.org/draft/2020-12/vocab/unevaluated"
)

// keywordMetaEntry is the static, per-keyword metadata described in §4.3: the
// drafts it is recognized under, the vocabularies it belongs to, its
// evaluation priority (lower runs first; ties break on keyword name), and
// whether it is an applicator that recurses into subschemas and therefore
// participates in annotation consolidation for unevaluatedProperties/
// unevaluatedItems.
type keywordMetaEntry struct {
	Drafts       []Draft
	Vocabularies []string
	Priority     int
	IsApplicator bool
}

var allDrafts = []Draft{Draft6, Draft7, Draft2019_09, Draft2020_12}

// keywordMeta is the package-level const table §4.3 calls for: keyword name to
// its metadata, independent of any one schema instance. Priority records each
// keyword's relative place: reference keywords 100 (identity, anchor and
// definition keywords, which do not evaluate, 0), applicators from 200, and
// unevaluated* consumers 900. evaluate() in validate.go does not sort by it;
// it runs a fixed sequence of keyword blocks, $ref/$dynamicRef first and
// unevaluated* after the other applicators.
var keywordMeta = map[string]keywordMetaEntry{
	"$ref":         {Drafts: allDrafts, Vocabularies: []string{vocabCore}, Priority: 100, IsApplicator: true},
	"$dynamicRef":  {Drafts: []Draft{Draft2020_12}, Vocabularies: []string{vocabCore}, Priority: 100, IsApplicator: true},
	"$dynamicAnchor": {Drafts: []Draft{Draft2020_12}, Vocabularies: []string{vocabCore}, Priority: 0, IsApplicator: false},
	"$anchor":      {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabCore}, Priority: 0},
	"$id":          {Drafts: allDrafts, Vocabularies: []string{vocabCore}, Priority: 0},
	"$defs":        {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabCore}, Priority: 0},
	"definitions":  {Drafts: []Draft{Draft6, Draft7}, Vocabularies: []string{vocabCore}, Priority: 0},

	"allOf": {Drafts: allDrafts, Vocabularies: []string{vocabApplicator}, Priority: 200, IsApplicator: true},
	"anyOf": {Drafts: allDrafts, Vocabularies: []string{vocabApplicator}, Priority: 200, IsApplicator: true},
	"oneOf": {Drafts: allDrafts, Vocabularies: []string{vocabApplicator}, Priority: 200, IsApplicator: true},
	"not":   {Drafts: allDrafts, Vocabularies: []string{vocabApplicator}, Priority: 200, IsApplicator: true},

	"if":   {Drafts: []Draft{Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabApplicator}, Priority: 210, IsApplicator: true},
	"then": {Drafts: []Draft{Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabApplicator}, Priority: 220, IsApplicator: true},
	"else": {Drafts: []Draft{Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabApplicator}, Priority: 220, IsApplicator: true},

	"properties":           {Drafts: allDrafts, Vocabularies: []string{vocabApplicator}, Priority: 300, IsApplicator: true},
	"patternProperties":    {Drafts: allDrafts, Vocabularies: []string{vocabApplicator}, Priority: 300, IsApplicator: true},
	"additionalProperties": {Drafts: allDrafts, Vocabularies: []string{vocabApplicator}, Priority: 310, IsApplicator: true},
	"propertyNames":        {Drafts: []Draft{Draft6, Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabApplicator}, Priority: 300, IsApplicator: true},

	"prefixItems":     {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabApplicator}, Priority: 300, IsApplicator: true},
	"items":           {Drafts: allDrafts, Vocabularies: []string{vocabApplicator}, Priority: 305, IsApplicator: true},
	"additionalItems": {Drafts: []Draft{Draft6, Draft7, Draft2019_09}, Vocabularies: []string{vocabApplicator}, Priority: 310, IsApplicator: true},
	"contains":        {Drafts: []Draft{Draft6, Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabApplicator}, Priority: 300, IsApplicator: true},
	"minContains":     {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabValidation}, Priority: 320},
	"maxContains":     {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabValidation}, Priority: 320},

	"dependentSchemas":  {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabApplicator}, Priority: 330, IsApplicator: true},
	"dependentRequired": {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabValidation}, Priority: 330},
	"dependencies":      {Drafts: []Draft{Draft6, Draft7}, Vocabularies: []string{vocabApplicator}, Priority: 330, IsApplicator: true},

	"unevaluatedProperties": {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabUnevaluated}, Priority: 900, IsApplicator: true},
	"unevaluatedItems":      {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabUnevaluated}, Priority: 900, IsApplicator: true},

	"type":              {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"enum":              {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"const":             {Drafts: []Draft{Draft6, Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabValidation}, Priority: 400},
	"multipleOf":        {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"maximum":           {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"exclusiveMaximum":  {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"minimum":           {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"exclusiveMinimum":  {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"maxLength":         {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"minLength":         {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"pattern":           {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"maxItems":          {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"minItems":          {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"uniqueItems":       {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"maxProperties":     {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"minProperties":     {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},
	"required":          {Drafts: allDrafts, Vocabularies: []string{vocabValidation}, Priority: 400},

	"format": {Drafts: allDrafts, Vocabularies: []string{vocabFormatAnnotation}, Priority: 500},

	"contentEncoding":  {Drafts: []Draft{Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabContent}, Priority: 600},
	"contentMediaType": {Drafts: []Draft{Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabContent}, Priority: 600},
	"contentSchema":    {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabContent}, Priority: 600, IsApplicator: true},

	"title":       {Drafts: allDrafts, Vocabularies: []string{vocabMetaData}, Priority: 10},
	"description": {Drafts: allDrafts, Vocabularies: []string{vocabMetaData}, Priority: 10},
	"default":     {Drafts: allDrafts, Vocabularies: []string{vocabMetaData}, Priority: 10},
	"examples":    {Drafts: []Draft{Draft6, Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabMetaData}, Priority: 10},
	"deprecated":  {Drafts: []Draft{Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabMetaData}, Priority: 10},
	"readOnly":    {Drafts: []Draft{Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabMetaData}, Priority: 10},
	"writeOnly":   {Drafts: []Draft{Draft7, Draft2019_09, Draft2020_12}, Vocabularies: []string{vocabMetaData}, Priority: 10},
}

// draftFromSchemaURI maps a "$schema" value to the Draft it declares. Unknown
// or absent URIs resolve to DraftUnspecified, under which no keyword is
// filtered — every keyword is treated as applicable, matching how this
// validator behaves when no draft is pinned or declared at all.
func draftFromSchemaURI(uri string) Draft {
	switch {
	case uri == "":
		return DraftUnspecified
	case containsAny(uri, "2020-12"):
		return Draft2020_12
	case containsAny(uri, "2019-09"):
		return Draft2019_09
	case containsAny(uri, "draft-07", "draft7"):
		return Draft7
	case containsAny(uri, "draft-06", "draft6"):
		return Draft6
	default:
		return DraftUnspecified
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// resolveActiveDraft determines the draft a schema is evaluated as: a pinned
// Options.ValidatingAs wins over the schema's own declared "$schema", which
// wins over DraftUnspecified (no filtering).
func resolveActiveDraft(s *Schema, dynamicScope *DynamicScope) Draft {
	if dynamicScope != nil {
		if opts := dynamicScope.Options(); opts != nil && opts.ValidatingAs != DraftUnspecified {
			return opts.ValidatingAs
		}
	}
	if s != nil {
		return s.Draft()
	}
	return DraftUnspecified
}

// keywordAppliesToDraft reports whether keyword is recognized under draft.
// DraftUnspecified and unknown keyword names always apply, so filtering never
// rejects a keyword this table doesn't know about.
func keywordAppliesToDraft(keyword string, draft Draft) bool {
	if draft == DraftUnspecified {
		return true
	}
	meta, ok := keywordMeta[keyword]
	if !ok {
		return true
	}
	for _, d := range meta.Drafts {
		if d == draft {
			return true
		}
	}
	return false
}
