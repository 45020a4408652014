package render

import (
	"errors"
	"testing"

	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/internal/types"
)

func sortKey(col string, dir types.Direction, nulls types.NullPlacement) types.SortKey {
	return types.SortKey{Column: col, Direction: dir, Nulls: nulls}
}

func TestOrderBy_Explicit(t *testing.T) {
	keys := []types.SortKey{
		sortKey("a", types.DESC, types.NullsFirst),
		sortKey("c", types.ASC, types.NullsLast),
	}
	tests := []struct {
		id   dialect.ID
		want string
	}{
		{dialect.Postgres, `"a" DESC NULLS FIRST, "c" ASC NULLS LAST`},
		{dialect.BigQuery, "`a` DESC NULLS FIRST, `c` ASC NULLS LAST"},
		{dialect.SQLite, `"a" DESC NULLS FIRST, "c" ASC NULLS LAST`},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			got, err := OrderBy(keys, dialect.MustLookup(tt.id))
			if err != nil {
				t.Fatalf("OrderBy() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("OrderBy() = %s, want %s", got, tt.want)
			}
		})
	}
}

// Explicit dialects write the placement even when it equals their default.
func TestOrderBy_ExplicitWritesDefaults(t *testing.T) {
	for _, id := range dialect.All() {
		d := dialect.MustLookup(id)
		if d.NullOrdering != dialect.Explicit {
			continue
		}
		for _, dir := range []types.Direction{types.ASC, types.DESC} {
			for _, nulls := range []types.NullPlacement{types.NullsFirst, types.NullsLast} {
				got, err := OrderBy([]types.SortKey{sortKey("a", dir, nulls)}, d)
				if err != nil {
					t.Errorf("%s: OrderBy(%s %s) error = %v", id, dir, nulls, err)
					continue
				}
				want := QuoteIdentifier(d, "a") + " " + string(dir) + " " + string(nulls)
				if got != want {
					t.Errorf("%s: OrderBy() = %s, want %s", id, got, want)
				}
			}
		}
	}
}

func TestOrderBy_DefaultOnly(t *testing.T) {
	mysql := dialect.MustLookup(dialect.MySQL)
	tests := []struct {
		name    string
		keys    []types.SortKey
		want    string
		unsupp  bool
		feature string
	}{
		{
			name: "defaults omitted",
			keys: []types.SortKey{sortKey("a", types.DESC, types.NullsLast), sortKey("c", types.ASC, types.NullsFirst)},
			want: "`a` DESC, `c` ASC",
		},
		{
			name:    "desc nulls first",
			keys:    []types.SortKey{sortKey("a", types.DESC, types.NullsFirst)},
			unsupp:  true,
			feature: "null ordering NULLS FIRST",
		},
		{
			name:    "asc nulls last",
			keys:    []types.SortKey{sortKey("a", types.ASC, types.NullsFirst), sortKey("c", types.ASC, types.NullsLast)},
			unsupp:  true,
			feature: "null ordering NULLS LAST",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrderBy(tt.keys, mysql)
			if !tt.unsupp {
				if err != nil {
					t.Fatalf("OrderBy() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("OrderBy() = %s, want %s", got, tt.want)
				}
				return
			}
			var uf UnsupportedFeatureError
			if !errors.As(err, &uf) {
				t.Fatalf("OrderBy() error = %v, want UnsupportedFeatureError", err)
			}
			if uf.Feature != tt.feature || uf.Dialect != "mysql" {
				t.Errorf("error = %+v, want feature %q", uf, tt.feature)
			}
			if got != "" {
				t.Errorf("OrderBy() = %q alongside error", got)
			}
		})
	}
}

func TestOrderBy_MSSQL(t *testing.T) {
	got, err := OrderBy([]types.SortKey{sortKey("c", types.ASC, types.NullsFirst)}, dialect.MustLookup(dialect.MSSQL))
	if err != nil {
		t.Fatalf("OrderBy() error = %v", err)
	}
	if got != "[c] ASC" {
		t.Errorf("OrderBy() = %s, want [c] ASC", got)
	}
}
