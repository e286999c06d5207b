package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteValue(t *testing.T) {
	assert.Equal(t, "westus", quoteValue("westus"))
	assert.Equal(t, `"east us"`, quoteValue("east us"))
	assert.Equal(t, `"a b c"`, quoteValue("a b c"))
}

func TestValueTarget(t *testing.T) {
	tests := []struct {
		text    string
		flag    string
		prefix  string
		started bool
		ok      bool
	}{
		{"vm create --size ", "--size", "", false, true},
		{"vm create --size st", "--size", "st", true, true},
		{"vm create -o ", "-o", "", false, true},
		{"vm create ", "", "", false, false},
		{"vm create --name foo ", "", "", false, false},
		{"", "", "", false, false},
	}
	for _, tt := range tests {
		flag, prefix, started, ok := valueTarget(tt.text)
		assert.Equal(t, tt.ok, ok, "text %q", tt.text)
		assert.Equal(t, tt.flag, flag, "text %q", tt.text)
		assert.Equal(t, tt.prefix, prefix, "text %q", tt.text)
		assert.Equal(t, tt.started, started, "text %q", tt.text)
	}
}

func TestEnumCandidates_StartedFiltersAndDeduplicates(t *testing.T) {
	values := []string{"json", "jsonc", "yaml"}

	out := enumCandidates(values, "js", true, []string{"vm", "list", "-o", "js"})
	assert.Equal(t, []string{"json", "jsonc"}, candidateTexts(out))

	// a value already on the line is not offered again
	out = enumCandidates(values, "js", true, []string{"vm", "list", "-o", "json", "js"})
	assert.Equal(t, []string{"jsonc"}, candidateTexts(out))
}

func TestEnumCandidates_NotStartedOffersAll(t *testing.T) {
	out := enumCandidates([]string{"a", "b"}, "", false, []string{"vm"})
	assert.Len(t, out, 2)
	assert.Equal(t, 0, out[0].ReplaceLength)
}

func TestValidParamCompletion(t *testing.T) {
	groups := [][]string{{"--name", "-n"}}

	assert.True(t, validParamCompletion("--name", "--n", "vm create --n", groups))
	assert.False(t, validParamCompletion("--name", "--r", "vm create --r", groups), "prefix mismatch")
	assert.False(t, validParamCompletion("--name", "--n", "vm create --n ", groups), "cursor after space")
	assert.False(t, validParamCompletion("--name", "--n", "vm create --name x --n", groups), "already on line")
	assert.False(t, validParamCompletion("-n", "-", "vm create --name x -", groups), "synonym on line")
}

func TestUnionParams(t *testing.T) {
	out := unionParams([]string{"--name", "-n"}, []string{"-n", "--size"})
	assert.Equal(t, []string{"--name", "-n", "--size"}, out)
}
