package pattern

import (
	"strconv"

	"demoreel-go/errcode"
	"demoreel-go/x/mathx"
)

// Registry is the ordered reel plus the current selection. The index is
// always in [0, Len()).
type Registry struct {
	kinds []Kind
	cur   int
}

func NewRegistry(kinds ...Kind) (*Registry, error) {
	const op = "pattern.registry"
	if len(kinds) == 0 {
		return nil, errcode.New(errcode.InvalidParams, op, "empty pattern list")
	}
	for i, k := range kinds {
		if !k.Valid() {
			return nil, errcode.New(errcode.UnknownPattern, op, "entry "+strconv.Itoa(i))
		}
	}
	return &Registry{kinds: append([]Kind(nil), kinds...)}, nil
}

// FromNames builds a registry from configured names. No names selects
// DefaultKinds.
func FromNames(names []string) (*Registry, error) {
	if len(names) == 0 {
		return NewRegistry(DefaultKinds()...)
	}
	kinds := make([]Kind, 0, len(names))
	for _, n := range names {
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return NewRegistry(kinds...)
}

// Next selects the following pattern, wrapping to the first.
func (r *Registry) Next() int { return r.Select(r.cur + 1) }

// Previous selects the preceding pattern, wrapping to the last.
func (r *Registry) Previous() int { return r.Select(r.cur - 1) }

// Select sets the index modulo Len and returns it.
func (r *Registry) Select(i int) int {
	r.cur = mathx.Wrap(i, len(r.kinds))
	return r.cur
}

func (r *Registry) Index() int    { return r.cur }
func (r *Registry) Len() int      { return len(r.kinds) }
func (r *Registry) Current() Kind { return r.kinds[r.cur] }
func (r *Registry) At(i int) Kind { return r.kinds[mathx.Wrap(i, len(r.kinds))] }
func (r *Registry) Kinds() []Kind { return append([]Kind(nil), r.kinds...) }
