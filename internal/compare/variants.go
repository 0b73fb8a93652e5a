package compare

import (
	"sort"

	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Variant derives an alternative purchase from a base purchase
type Variant struct {
	Name        string
	Description string
	Apply       func(Purchase) Purchase
}

// VariantRegistry holds named variants in registration order
type VariantRegistry struct {
	variants map[string]Variant
	order    []string
}

// NewVariantRegistry creates an empty registry
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{variants: make(map[string]Variant)}
}

// Register adds or replaces a variant
func (r *VariantRegistry) Register(v Variant) {
	if _, exists := r.variants[v.Name]; !exists {
		r.order = append(r.order, v.Name)
	}
	r.variants[v.Name] = v
}

// Get returns a variant by name
func (r *VariantRegistry) Get(name string) (Variant, bool) {
	v, ok := r.variants[name]
	return v, ok
}

// Names returns variant names in registration order
func (r *VariantRegistry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// SortedNames returns variant names alphabetically
func (r *VariantRegistry) SortedNames() []string {
	out := r.Names()
	sort.Strings(out)
	return out
}

// BuiltInVariants returns one variant per property type, one per location
// and a cash purchase
func BuiltInVariants() *VariantRegistry {
	r := NewVariantRegistry()
	for _, pt := range domain.PropertyTypes {
		pt := pt // per-iteration copy for pre-Go 1.22 loop semantics
		r.Register(Variant{
			Name:        string(pt),
			Description: "Buy as " + string(pt),
			Apply: func(p Purchase) Purchase {
				p.Type = pt
				return p
			},
		})
	}
	for _, loc := range domain.Locations {
		loc := loc // per-iteration copy for pre-Go 1.22 loop semantics
		r.Register(Variant{
			Name:        string(loc),
			Description: "Buy in " + string(loc),
			Apply: func(p Purchase) Purchase {
				p.Location = loc
				return p
			},
		})
	}
	r.Register(Variant{
		Name:        "no-loan",
		Description: "Pay cash, no mortgage stamp duty",
		Apply: func(p Purchase) Purchase {
			p.Loan = decimal.Zero
			return p
		},
	})
	return r
}
