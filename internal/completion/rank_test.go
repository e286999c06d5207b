package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_RequiredFirst(t *testing.T) {
	in := []Candidate{
		{Text: "--zone"},
		{Text: "--resource-group", DisplayMeta: "[REQUIRED] Resource group"},
		{Text: "--location", DisplayMeta: "Region"},
		{Text: "--name", DisplayMeta: "[REQUIRED] Name"},
	}

	out := Rank(in)
	assert.Equal(t, []string{"--name", "--resource-group", "--location", "--zone"}, candidateTexts(out))
}

func TestRank_Idempotent(t *testing.T) {
	in := []Candidate{
		{Text: "b"},
		{Text: "a", DisplayMeta: "[REQUIRED]"},
		{Text: "c"},
	}

	once := Rank(in)
	twice := Rank(once)
	assert.Equal(t, once, twice)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []Candidate{{Text: "b"}, {Text: "a"}}
	Rank(in)
	assert.Equal(t, "b", in[0].Text)
}

func TestRank_StableWithinPartition(t *testing.T) {
	// equal keys keep their relative order
	in := []Candidate{
		{Text: "same", DisplayMeta: "first"},
		{Text: "same", DisplayMeta: "second"},
	}

	out := Rank(in)
	assert.Equal(t, "first", out[0].DisplayMeta)
	assert.Equal(t, "second", out[1].DisplayMeta)
}
