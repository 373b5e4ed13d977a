package googlefonts

import (
	"regexp"
	"strconv"
)

var (
	fontFaceRE = regexp.MustCompile(`@font-face\s*\{`)
	weightRE   = regexp.MustCompile(`font-weight:\s*(\d+)`)
	woff2RE    = regexp.MustCompile(`url\((https://[^)]+\.woff2)\)`)
	ttfRE      = regexp.MustCompile(`url\((https://[^)]+\.ttf)\)`)
)

// parseStylesheet extracts a weight-to-URL map from a css2 response.
//
// The stylesheet is split on @font-face block boundaries; each block must
// yield both a font-weight and an asset URL or it is skipped. When a
// block carries both a woff2 and a ttf URL the woff2 one wins. Later
// blocks for the same weight overwrite earlier ones (the service emits
// one block per weight per script subset; any of them serves).
func parseStylesheet(css string) map[int]string {
	byWeight := make(map[int]string)

	blocks := fontFaceRE.Split(css, -1)
	if len(blocks) < 2 {
		return byWeight
	}

	for _, block := range blocks[1:] {
		m := weightRE.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		weight, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		var assetURL string
		if u := woff2RE.FindStringSubmatch(block); u != nil {
			assetURL = u[1]
		} else if u := ttfRE.FindStringSubmatch(block); u != nil {
			assetURL = u[1]
		}
		if assetURL == "" {
			continue
		}

		byWeight[weight] = assetURL
	}

	return byWeight
}

// availableWeights returns the keys of a parsed stylesheet map.
func availableWeights(byWeight map[int]string) []int {
	weights := make([]int, 0, len(byWeight))
	for w := range byWeight {
		weights = append(weights, w)
	}
	return weights
}
