package plansql

import (
	"github.com/zoobzio/dbml"
	"github.com/zoobzio/plansql/internal/types"
)

// Column types reported by Schema.
const (
	TypeBigint  = "bigint"
	TypeVarchar = "varchar"
	TypeNull    = "null"
)

// Schema describes the inferred column types of a plan's source as a DBML
// table. A column holding only integers (and NULLs) is bigint, one holding
// any string is varchar, one holding only NULLs is null.
func Schema(plan Node, name string) *dbml.Table {
	table := dbml.NewTable(name)
	src := plan.Source()
	if src == nil {
		return table
	}
	for i, kinds := range src.ColumnKinds() {
		table.AddColumn(dbml.NewColumn(src.Columns[i], columnType(kinds)))
	}
	return table
}

// SchemaProject wraps the schemas of several named plans in a DBML project.
func SchemaProject(name string, plans map[string]Node) *dbml.Project {
	project := dbml.NewProject(name)
	for table, plan := range plans {
		project.AddTable(Schema(plan, table))
	}
	return project
}

func columnType(kinds types.KindSet) string {
	switch {
	case kinds.Has(types.KindString):
		return TypeVarchar
	case kinds.Has(types.KindInt):
		return TypeBigint
	default:
		return TypeNull
	}
}
