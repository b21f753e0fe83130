package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo is one row of MySQL SHOW COLUMNS. SQLite fills Field and Type only.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// GetTableColumns returns the columns of tableName with lower-cased names
// and types. A missing table yields no columns and no error on SQLite.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var (
		columns []ColumnInfo
		err     error
	)
	if db.Dialector.Name() == DriverSQLite {
		columns, err = sqliteColumns(db, tableName)
	} else {
		columns, err = mysqlColumns(db, tableName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

func sqliteColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	type pragmaColumn struct {
		Cid        int
		Name       string
		Type       string
		Notnull    int
		DefaultVal *string
		Pk         int
	}

	var rows []pragmaColumn
	query := fmt.Sprintf("PRAGMA table_info('%s')", strings.ReplaceAll(tableName, "'", "''"))
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, ColumnInfo{Field: row.Name, Type: row.Type})
	}
	return columns, nil
}

func mysqlColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	query := fmt.Sprintf("SHOW COLUMNS FROM `%s`", strings.ReplaceAll(tableName, "`", "``"))
	if err := db.Raw(query).Scan(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}
