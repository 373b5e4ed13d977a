package fontset

import (
	"sort"
	"strings"
)

// stemPattern matches a lowercased filename stem either by substring or,
// when prefix is set, only at the start of the stem.
type stemPattern struct {
	text   string
	prefix bool
}

func (p stemPattern) matches(stem string) bool {
	if p.prefix {
		return strings.HasPrefix(stem, p.text)
	}
	return strings.Contains(stem, p.text)
}

// rolePatterns lists the filename patterns for each role in priority order.
// Numeric patterns cover files named after CSS weights (font-700.ttf);
// prefix patterns cover the b_/r_/l_ naming style.
var rolePatterns = map[Role][]stemPattern{
	RoleBold: {
		{text: "bold"},
		{text: "700"},
		{text: "b_", prefix: true},
	},
	RoleRegular: {
		{text: "regular"},
		{text: "400"},
		{text: "normal"},
		{text: "r_", prefix: true},
	},
	RoleLight: {
		{text: "light"},
		{text: "300"},
		{text: "thin"},
		{text: "l_", prefix: true},
	},
}

// Closest returns the element of available numerically nearest to target.
// The second return is false only when available is empty. The scan runs
// over the weights in ascending order, so a tie resolves to the lower
// weight; callers must not rely on the tie direction.
func Closest(available []int, target int) (int, bool) {
	if len(available) == 0 {
		return 0, false
	}

	sorted := make([]int, len(available))
	copy(sorted, available)
	sort.Ints(sorted)

	best := sorted[0]
	for _, w := range sorted[1:] {
		if abs(w-target) < abs(best-target) {
			best = w
		}
	}
	return best, true
}

// MatchesRole reports whether a filename stem matches any of the given
// role's patterns. Matching is case-insensitive.
func MatchesRole(stem string, role Role) bool {
	stem = strings.ToLower(stem)
	for _, p := range rolePatterns[role] {
		if p.matches(stem) {
			return true
		}
	}
	return false
}

// ClassifyStem assigns a filename stem to a role. Roles are tested in the
// fixed scan order (bold, regular, light), so a stem matching several
// roles' patterns always lands in the first matching role. Returns false
// when no pattern matches.
func ClassifyStem(stem string) (Role, bool) {
	for _, role := range scanOrder {
		if MatchesRole(stem, role) {
			return role, true
		}
	}
	return "", false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
