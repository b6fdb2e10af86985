package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of an existing table.
type ColumnInfo struct {
	Field string
	Type  string
}

// GetTableColumns retrieves the column definitions for a given table.
// A table that does not exist yields no columns.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	if db.Dialector.Name() == DriverSQLite {
		type sqliteColumn struct {
			Name string
			Type string
		}
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range rows {
			columns = append(columns, ColumnInfo{Field: col.Name, Type: col.Type})
		}
	} else {
		type mysqlColumn struct {
			Field string
			Type  string
		}
		var rows []mysqlColumn
		if err := db.Raw("SELECT COLUMN_NAME AS field, COLUMN_TYPE AS type FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? ORDER BY ORDINAL_POSITION", tableName).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range rows {
			columns = append(columns, ColumnInfo{Field: col.Field, Type: col.Type})
		}
	}

	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

// MissingColumns returns the expected column names absent from tableName.
func MissingColumns(db *gorm.DB, tableName string, expected []string) ([]string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		present[col.Field] = struct{}{}
	}

	var missing []string
	for _, name := range expected {
		if _, ok := present[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
