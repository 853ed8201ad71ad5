package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocales(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil", input: nil, want: nil},
		{name: "empty entries dropped", input: []string{"", "en", ""}, want: []string{"en"}},
		{name: "case-insensitive dedupe keeps first casing", input: []string{"en-US", "EN-us", "ja"}, want: []string{"en-US", "ja"}},
		{name: "order preserved", input: []string{"ja", "en", "fr"}, want: []string{"ja", "en", "fr"}},
		{name: "all empty collapses to nil", input: []string{"", "  "}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLocales(tt.input))
		})
	}
}

func TestNormalizeLocalesIdempotent(t *testing.T) {
	once := NormalizeLocales([]string{"en-US", "EN-us", "", "ja"})
	twice := NormalizeLocales(once)
	assert.Equal(t, once, twice)
}

// localeMap backs a test provider with values keyed by "claim#tag"; the
// untagged value is keyed by the bare claim name.
func localeMap(values map[string]any) Provider {
	return ProviderFunc(func(subject, claimName, languageTag string) any {
		key := claimName
		if languageTag != "" {
			key = claimName + "#" + languageTag
		}
		return values[key]
	})
}

func TestCollectExplicitTagWins(t *testing.T) {
	provider := localeMap(map[string]any{
		"family_name#ja": "山田",
		"family_name#en": "Yamada",
		"family_name":    "fallback",
	})

	collected := NewCollector(provider).Collect("user-1", []string{"family_name#ja"}, []string{"en"})

	require.NotNil(t, collected)
	// Keyed by the requested name, tag included.
	assert.Equal(t, "山田", collected["family_name#ja"])
	assert.NotContains(t, collected, "family_name")
}

func TestCollectLocaleFallbackOrder(t *testing.T) {
	provider := localeMap(map[string]any{
		"name#en": "John",
		"name":    "untagged",
	})

	// ja has no value, en does: en wins because it comes first among those
	// that resolve.
	collected := NewCollector(provider).Collect("user-1", []string{"name"}, []string{"ja", "en"})
	require.NotNil(t, collected)
	assert.Equal(t, "John", collected["name"])
}

func TestCollectUntaggedLastResort(t *testing.T) {
	provider := localeMap(map[string]any{"name": "untagged"})

	collected := NewCollector(provider).Collect("user-1", []string{"name"}, []string{"ja", "en"})
	require.NotNil(t, collected)
	assert.Equal(t, "untagged", collected["name"])
}

func TestCollectUnresolvedOmitted(t *testing.T) {
	provider := localeMap(map[string]any{"name": "John"})

	collected := NewCollector(provider).Collect("user-1", []string{"name", "email"}, nil)
	require.NotNil(t, collected)
	assert.Equal(t, map[string]any{"name": "John"}, collected)
}

func TestCollectNothingResolvedReturnsNil(t *testing.T) {
	provider := localeMap(nil)

	assert.Nil(t, NewCollector(provider).Collect("user-1", []string{"name"}, nil))
}

func TestCollectEmptyInputs(t *testing.T) {
	provider := localeMap(map[string]any{"name": "John"})
	c := NewCollector(provider)

	assert.Nil(t, c.Collect("", []string{"name"}, nil))
	assert.Nil(t, c.Collect("user-1", nil, nil))
	assert.Nil(t, NewCollector(nil).Collect("user-1", []string{"name"}, nil))
}

func TestCollectLocaleDuplicatesQueriedOnce(t *testing.T) {
	var lookups []string
	provider := ProviderFunc(func(subject, claimName, languageTag string) any {
		lookups = append(lookups, languageTag)
		return nil
	})

	NewCollector(provider).Collect("user-1", []string{"name"}, []string{"en", "EN", "en"})

	// One lookup per distinct locale plus the final untagged fallback.
	assert.Equal(t, []string{"en", ""}, lookups)
}

func TestCollectJSON(t *testing.T) {
	provider := localeMap(map[string]any{"name": "John", "age": 30})

	encoded := NewCollector(provider).CollectJSON("user-1", []string{"name", "age"}, nil)
	assert.JSONEq(t, `{"name":"John","age":30}`, encoded)
}

func TestCollectJSONEmptyOnNoClaims(t *testing.T) {
	provider := localeMap(nil)

	assert.Equal(t, "", NewCollector(provider).CollectJSON("user-1", []string{"name"}, nil))
}

func TestCollectJSONEmptyOnMarshalFailure(t *testing.T) {
	// A channel is not JSON-serializable; the collector swallows the error
	// and reports no claims rather than failing the flow.
	provider := localeMap(map[string]any{"name": make(chan int)})

	assert.Equal(t, "", NewCollector(provider).CollectJSON("user-1", []string{"name"}, nil))
}
