package completion

import (
	"sort"
	"strings"

	"github.com/cloudsh/cloudsh/internal/table"
)

// Rank stable-sorts candidates so required parameters come strictly
// before all others, alphabetically within each partition. Ranking an
// already-ranked sequence yields the same order.
func Rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankKey(ranked[i]) < rankKey(ranked[j])
	})

	return ranked
}

// rankKey weights required candidates first, then lexicographically. A
// leading space sorts below every printable character, so marked
// candidates come out ahead without a second sort pass.
func rankKey(c Candidate) string {
	if strings.HasPrefix(c.DisplayMeta, table.RequiredMarker) {
		return " " + c.Text
	}
	return c.Text
}
