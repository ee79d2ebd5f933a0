package repository

import (
	"fmt"
	"strings"
)

// table lists the columns of a relation once; every statement the
// repositories run is generated from it, so reads and writes cannot drift
// apart. The key column is always "id" and is assigned by the store.
type table struct {
	name    string
	columns []string
}

var (
	administratorsTable = table{
		name:    "administrators",
		columns: []string{"name", "mail_address", "password"},
	}

	employeesTable = table{
		name: "employees",
		columns: []string{
			"name", "image", "gender", "hire_date", "mail_address", "zip_code",
			"address", "telephone", "salary", "characteristics", "dependents_count",
		},
	}
)

func (t table) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(t.columns, ", "), t.name)
}

// insertSQL uses sqlx named parameters bound from the entity's db tags.
func (t table) insertSQL() string {
	params := make([]string, len(t.columns))
	for i, c := range t.columns {
		params[i] = ":" + c
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.name, strings.Join(t.columns, ", "), strings.Join(params, ", "))
}

func (t table) updateSQL() string {
	sets := make([]string, len(t.columns))
	for i, c := range t.columns {
		sets[i] = c + " = :" + c
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", t.name, strings.Join(sets, ", "))
}
