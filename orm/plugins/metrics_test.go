package plugins

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatement(table, sql string) *gorm.DB {
	db := &gorm.DB{Statement: &gorm.Statement{Table: table}}
	db.Statement.SQL.WriteString(sql)
	return db
}

func TestGetOperationType(t *testing.T) {
	tests := map[string]string{
		`SELECT * FROM "agents"`:                     "SELECT",
		`with ranked as (select 1) select * from x`: "SELECT",
		`INSERT INTO "tokens" ("name") VALUES ($1)`:  "INSERT",
		`delete from agents`:                         "DELETE",
		`VACUUM`:                                     "OTHER",
		``:                                           "UNKNOWN",
	}
	for sql, want := range tests {
		require.Equal(t, want, getOperationType(newStatement("", sql)), sql)
	}
}

func TestGetTableName(t *testing.T) {
	require.Equal(t, "tokens", getTableName(newStatement("tokens", `SELECT * FROM "agents"`)))
	require.Equal(t, "agents", getTableName(newStatement("", `SELECT * FROM "agents" WHERE id = $1`)))
	require.Equal(t, "recent_trades", getTableName(newStatement("", `INSERT INTO recent_trades VALUES ($1)`)))
	require.Equal(t, "unknown", getTableName(newStatement("", `SELECT 1`)))
	require.Equal(t, "unknown", getTableName(&gorm.DB{}))
}
