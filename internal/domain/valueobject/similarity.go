package valueobject

// Similarity computes a symmetric textual similarity score in [0.0, 1.0]
// between two strings using the ratio of matched characters found by a
// longest-matching-block sequence matcher: 2*M / (len(a)+len(b)), where M is
// the total length of all matching blocks. Identical strings score 1.0; an
// empty side scores 0.0.
func Similarity(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	if a == b {
		return 1.0
	}

	matched := matchedLength([]byte(a), []byte(b))
	return 2.0 * float64(matched) / float64(len(a)+len(b))
}

// SimilarityPercent renders a similarity score as an integer percentage.
func SimilarityPercent(score float64) int {
	return int(score*100 + 0.5)
}

// matchedLength sums the lengths of all matching blocks between a and b,
// found by recursively locating the longest match and repeating on the
// unmatched pieces to its left and right.
func matchedLength(a, b []byte) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}

	total := size
	total += matchedLength(a[:ai], b[:bi])
	total += matchedLength(a[ai+size:], b[bi+size:])
	return total
}

// longestMatch finds the longest contiguous matching block between a and b,
// returning its start in a, its start in b, and its length. Among equally
// long blocks the earliest in a, then earliest in b, wins.
func longestMatch(a, b []byte) (int, int, int) {
	// Positions of each byte value in b, so candidate extensions are only
	// attempted where a match is possible.
	positions := make(map[byte][]int, len(b))
	for j, c := range b {
		positions[c] = append(positions[c], j)
	}

	bestA, bestB, bestSize := 0, 0, 0

	// lengths[j] holds the length of the match ending at a[i-1], b[j-1].
	lengths := make(map[int]int)
	for i, c := range a {
		next := make(map[int]int, len(positions[c]))
		for _, j := range positions[c] {
			k := lengths[j-1] + 1
			next[j] = k
			if k > bestSize {
				bestA, bestB, bestSize = i-k+1, j-k+1, k
			}
		}
		lengths = next
	}

	return bestA, bestB, bestSize
}
