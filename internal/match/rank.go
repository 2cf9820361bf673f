package match

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"pathscope/internal/fieldpath"
)

// Candidate is a known path scored against an unmatched input path.
type Candidate struct {
	Path string

	LeafScore  float64 // similarity of the last keys
	ShapeScore float64 // similarity of the whole key chains

	// Combined score for ranking (higher is better)
	Score float64
}

// CandidateList is a list of candidates with ranking helpers.
type CandidateList []Candidate

// Default thresholds for closest-path hints.
const (
	DefaultMinClosestScore = 0.5
	leafWeight             = 0.7
	shapeWeight            = 0.3
)

// RankCandidates scores every known path against input. The last key
// carries 70% of the score, the full key chain the rest.
// Returns candidates sorted by score, then path.
func RankCandidates(input string, known *fieldpath.Set) CandidateList {
	inLeaf, inShape := foldedKeys(input)

	var out CandidateList

	for p := range known.All {
		leaf, shape := foldedKeys(p)

		c := Candidate{
			Path:       p,
			LeafScore:  Similarity(inLeaf, leaf),
			ShapeScore: Similarity(inShape, shape),
		}
		c.Score = c.LeafScore*leafWeight + c.ShapeScore*shapeWeight

		out = append(out, c)
	}

	sort.Sort(out)

	return out
}

// RankClosest returns up to n known paths scoring at least minScore.
func RankClosest(input string, known *fieldpath.Set, n int, minScore float64) []string {
	ranked := RankCandidates(input, known).AboveThreshold(minScore).Top(n)

	paths := make([]string, 0, len(ranked))
	for _, c := range ranked {
		paths = append(paths, c.Path)
	}

	return paths
}

// foldedKeys returns the case-folded local name of the last key and the
// folded local names of all keys joined by ".". Separators inside keys
// ("_", "-") are dropped so "cod_cidade" and "codCidade" compare equal.
func foldedKeys(path string) (leaf, shape string) {
	keys := fieldpath.Parse(path).Keys()
	if len(keys) == 0 {
		return "", ""
	}

	fold := cases.Fold()
	parts := make([]string, len(keys))

	for i, k := range keys {
		parts[i] = stripSeparators(fold.String(k.LocalName()))
	}

	return parts[len(parts)-1], strings.Join(parts, ".")
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}

		return r
	}, s)
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by path for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Path < c[j].Path
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 {
		n = 0
	}

	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
