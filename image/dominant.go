package image

// DefaultTop is the number of colors reported when none is given.
const DefaultTop = 5

// Analyzer finds the most frequent colors of an image among those
// accepted by Keep.
type Analyzer struct {
	Keep     Predicate
	Quantize int // colors to quantize to before tallying; 0 disables
}

// DominantColors loads the image at path and returns its topN most
// frequent matching colors. The result is empty if no pixel matches or
// topN <= 0. Load failures are returned as *DecodeError.
func (a Analyzer) DominantColors(path string, topN int) (ColorCountList, error) {
	i, e := Load(path)
	if e != nil {
		return nil, e
	}

	i = Quantize(i, a.Quantize)
	return RankColors(GetColors(i, a.Keep)).Top(topN), nil
}

// GetDominantColors returns the topN most frequent tan colors of the
// image at path.
func GetDominantColors(path string, topN int) (ColorCountList, error) {
	return Analyzer{Keep: Tan}.DominantColors(path, topN)
}
