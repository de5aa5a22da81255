package postgres

import (
	"testing"

	"github.com/maxviazov/storefront-pager/internal/repository"
)

func TestProductWhere(t *testing.T) {
	cases := []struct {
		name      string
		filter    repository.ProductFilter
		wantWhere string
		wantArgs  []any
	}{
		{"none", repository.ProductFilter{}, "", nil},
		{"blank term ignored", repository.ProductFilter{Term: "   "}, "", nil},
		{"term is lowercased", repository.ProductFilter{Term: "ShO"}, ` WHERE lower(name) LIKE $1 ESCAPE '\'`, []any{"sho%"}},
		{"term", repository.ProductFilter{Term: "sh"}, ` WHERE lower(name) LIKE $1 ESCAPE '\'`, []any{"sh%"}},
		{"escaped term", repository.ProductFilter{Term: `50%_off\`}, ` WHERE lower(name) LIKE $1 ESCAPE '\'`, []any{`50\%\_off\\%`}},
		{"category", repository.ProductFilter{Category: "shoes"}, ` WHERE $1 = ANY(categories)`, []any{"shoes"}},
		{"both", repository.ProductFilter{Term: "a", Category: "b"}, ` WHERE lower(name) LIKE $1 ESCAPE '\' AND $2 = ANY(categories)`, []any{"a%", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := productWhere(tc.filter)
			if where != tc.wantWhere {
				t.Fatalf("where = %q, want %q", where, tc.wantWhere)
			}
			if len(args) != len(tc.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tc.wantArgs)
			}
			for i := range args {
				if args[i] != tc.wantArgs[i] {
					t.Fatalf("arg %d = %v, want %v", i, args[i], tc.wantArgs[i])
				}
			}
		})
	}
}

func TestSanitizeLimitOffset(t *testing.T) {
	l, o := sanitizeLimitOffset(0, -3)
	if l != defaultPageLimit || o != 0 {
		t.Fatalf("got (%d,%d)", l, o)
	}
	l, o = sanitizeLimitOffset(25, 50)
	if l != 25 || o != 50 {
		t.Fatalf("got (%d,%d)", l, o)
	}
}
