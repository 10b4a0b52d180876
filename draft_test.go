package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArrayFormItemsRejectedUnder2020_12 covers Testable Property 10's
// loader-rejection half: the array ("tuple") form of "items" was replaced by
// "prefixItems" in draft 2020-12, so a schema declaring that draft and still
// using the array form must fail to compile rather than be silently remapped.
func TestArrayFormItemsRejectedUnder2020_12(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"items": [{"type": "string"}, {"type": "integer"}],
		"additionalItems": false
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArrayItemsUnsupportedInDraft)
}

// TestArrayFormItemsAcceptedUnderDraft07 confirms the same array-form "items"
// still compiles under draft-07, where it is tuple validation with
// "additionalItems" governing the remainder.
func TestArrayFormItemsAcceptedUnderDraft07(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"items": [{"type": "string"}, {"type": "integer"}],
		"additionalItems": false
	}`))
	require.NoError(t, err)

	result := schema.Validate([]interface{}{"a", 1})
	assert.True(t, result.IsValid())

	result = schema.Validate([]interface{}{"a", 1, "extra"})
	assert.False(t, result.IsValid())
}

// TestRegistryEntryTracksDeclaredDraft exercises the Registry-entry data model
// (C6): compiling a schema under an absolute URI records its declared draft
// and default vocabulary set, independent of the global schemas cache.
func TestRegistryEntryTracksDeclaredDraft(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`{
		"$id": "https://example.com/versioned",
		"$schema": "https://json-schema.org/draft/2019-09/schema",
		"type": "object"
	}`))
	require.NoError(t, err)

	entry, ok := compiler.GetRegistryEntry("https://example.com/versioned")
	require.True(t, ok)
	assert.Equal(t, Draft2019_09, entry.Draft)
	assert.True(t, entry.Vocabularies[vocabCore])
	assert.True(t, entry.Vocabularies[vocabUnevaluated], "draft 2019-09 carries the unevaluated vocabulary")
}

// TestValidatingAsFiltersUnevaluatedProperties pins Options.ValidatingAs to a
// pre-2019-09 draft and confirms "unevaluatedProperties" is no longer
// enforced, since that keyword did not exist before draft 2019-09.
func TestValidatingAsFiltersUnevaluatedProperties(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"unevaluatedProperties": false
	}`))
	require.NoError(t, err)

	instance := map[string]interface{}{"a": "x", "b": "extra"}

	draft7Result := schema.ValidateWithOptions(instance, &Options{OutputFormat: OutputDetailed, ValidatingAs: Draft7})
	assert.True(t, draft7Result.IsValid(), "unevaluatedProperties should not apply when pinned to draft-07")

	latestResult := schema.ValidateWithOptions(instance, &Options{OutputFormat: OutputDetailed, ValidatingAs: Draft2020_12})
	assert.False(t, latestResult.IsValid(), "unevaluatedProperties should apply when pinned to 2020-12")
}

// TestKeywordMetaCoversCoreKeywords sanity-checks the static metadata table:
// every entry names at least one draft and one vocabulary.
func TestKeywordMetaCoversCoreKeywords(t *testing.T) {
	for _, name := range []string{"$ref", "$dynamicRef", "properties", "prefixItems", "unevaluatedProperties", "if", "contains"} {
		meta, ok := keywordMeta[name]
		require.True(t, ok, "keywordMeta missing entry for %q", name)
		assert.NotEmpty(t, meta.Drafts, "keyword %q should declare applicable drafts", name)
		assert.NotEmpty(t, meta.Vocabularies, "keyword %q should declare a vocabulary", name)
	}
}
