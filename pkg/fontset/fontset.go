package fontset

import (
	"github.com/fontwell/fontwell/pkg/errors"
)

// Role identifies one of the three weight buckets in a font set.
type Role string

// The three roles every resolved set must fill.
const (
	RoleLight   Role = "light"
	RoleRegular Role = "regular"
	RoleBold    Role = "bold"
)

// scanOrder is the fixed order in which roles claim candidates during
// directory classification. A filename matching several roles' patterns
// is assigned to whichever role comes first here.
var scanOrder = [...]Role{RoleBold, RoleRegular, RoleLight}

// roleWeights maps the canonical CSS weight of each role.
var roleWeights = map[int]Role{
	300: RoleLight,
	400: RoleRegular,
	700: RoleBold,
}

// DefaultWeights returns the weights requested when the caller does not
// specify any: light (300), regular (400), and bold (700).
func DefaultWeights() []int {
	return []int{300, 400, 700}
}

// RoleForWeight maps a numeric font weight to its role.
// Weights outside the fixed table count as regular.
func RoleForWeight(weight int) Role {
	if role, ok := roleWeights[weight]; ok {
		return role
	}
	return RoleRegular
}

// SupportedExts lists the font file extensions (without dot) the local
// resolver and the asset cache accept.
var SupportedExts = map[string]bool{
	"ttf":   true,
	"otf":   true,
	"woff":  true,
	"woff2": true,
}

// Set is a fully resolved font set. Every field holds a filesystem path
// to a usable font asset; a Set returned by this package is never
// partially populated.
type Set struct {
	Light   string `json:"light"`
	Regular string `json:"regular"`
	Bold    string `json:"bold"`
}

// Path returns the asset path for the given role.
func (s *Set) Path(role Role) string {
	switch role {
	case RoleLight:
		return s.Light
	case RoleBold:
		return s.Bold
	default:
		return s.Regular
	}
}

// Builder accumulates per-role paths while a source is being resolved.
// Roles fill in incrementally and may be missing until Fill is called;
// only a complete Builder converts into a Set.
type Builder struct {
	paths map[Role]string
	order []Role // insertion order, drives regular promotion
}

// NewBuilder returns an empty accumulator.
func NewBuilder() *Builder {
	return &Builder{paths: make(map[Role]string, 3)}
}

// Assign records path for role. Re-assigning a role overwrites the path
// but keeps its original position in the insertion order.
func (b *Builder) Assign(role Role, path string) {
	if _, ok := b.paths[role]; !ok {
		b.order = append(b.order, role)
	}
	b.paths[role] = path
}

// Has reports whether role has been assigned.
func (b *Builder) Has(role Role) bool {
	_, ok := b.paths[role]
	return ok
}

// Empty reports whether nothing has been assigned yet.
func (b *Builder) Empty() bool {
	return len(b.paths) == 0
}

// Fill applies the completion rules that guarantee a usable result:
// a missing regular is promoted from the first role assigned, then
// missing bold and light duplicate regular. Does nothing when the
// builder is empty.
func (b *Builder) Fill() {
	if b.Empty() {
		return
	}
	if !b.Has(RoleRegular) {
		b.Assign(RoleRegular, b.paths[b.order[0]])
	}
	if !b.Has(RoleBold) {
		b.Assign(RoleBold, b.paths[RoleRegular])
	}
	if !b.Has(RoleLight) {
		b.Assign(RoleLight, b.paths[RoleRegular])
	}
}

// Set converts the builder into a Set. All three roles must be present.
func (b *Builder) Set() (*Set, error) {
	for _, role := range scanOrder {
		if !b.Has(role) {
			return nil, errors.New(errors.ErrCodeMissingAsset, "no font asset resolved for role %s", role)
		}
	}
	return &Set{
		Light:   b.paths[RoleLight],
		Regular: b.paths[RoleRegular],
		Bold:    b.paths[RoleBold],
	}, nil
}
