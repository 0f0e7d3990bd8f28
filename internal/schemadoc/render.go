package schemadoc

import (
	"fmt"
	"strings"
)

// render builds the full documentation string: static preamble followed
// by one markdown table section per domain table, in DomainTables order.
func render(columns []Column, fks []ForeignKey, checks []Check) string {
	fkByColumn := make(map[string]ForeignKey, len(fks))
	for _, fk := range fks {
		fkByColumn[fk.Table+"."+fk.Column] = fk
	}
	checkByColumn := make(map[string]Check, len(checks))
	for _, chk := range checks {
		checkByColumn[chk.Table+"."+chk.Column] = chk
	}

	byTable := make(map[string][]Column, len(DomainTables))
	for _, col := range columns {
		byTable[col.Table] = append(byTable[col.Table], col)
	}

	var b strings.Builder
	b.WriteString(Preamble)

	for _, table := range DomainTables {
		cols := byTable[table]
		if len(cols) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n## %s\n\n", table)
		b.WriteString("| Column | Type | Nullable | Default | Notes |\n")
		b.WriteString("|--------|------|----------|---------|-------|\n")

		for _, col := range cols {
			nullable := "no"
			if col.Nullable {
				nullable = "yes"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				col.Name, col.DataType, nullable, col.Default,
				columnNotes(col, fkByColumn, checkByColumn))
		}
	}

	return b.String()
}

// columnNotes assembles the notes cell: primary-key marker, foreign-key
// target, and either the decoded enum values or the raw check expression.
func columnNotes(col Column, fks map[string]ForeignKey, checks map[string]Check) string {
	var notes []string

	if col.Name == "id" {
		notes = append(notes, "primary key")
	}

	key := col.Table + "." + col.Name
	if fk, ok := fks[key]; ok {
		notes = append(notes, fmt.Sprintf("FK → %s(%s)", fk.RefTable, fk.RefColumn))
	}

	if chk, ok := checks[key]; ok {
		if values, ok := ParseEnumValues(chk.Definition); ok {
			notes = append(notes, "allowed: "+strings.Join(values, ", "))
		} else {
			notes = append(notes, StripCheck(chk.Definition))
		}
	}

	return strings.Join(notes, "; ")
}
