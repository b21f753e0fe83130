package audit

import (
	"fmt"
	"reflect"
	"strings"

	"furnidata-manager/core/database"
	"furnidata-manager/feature/emulator/models"

	"gorm.io/gorm"
)

// CheckSchema verifies that the emulator table carries every column the
// row model maps. The model's gorm tags are the source of truth.
func CheckSchema(db *gorm.DB, emulator string) (*SchemaReport, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	model, err := models.ModelFor(emulator)
	if err != nil {
		return nil, err
	}
	name, _ := models.Normalize(emulator)

	report := &SchemaReport{
		Emulator:       name,
		Table:          model.TableName(),
		MissingColumns: []string{},
	}

	actual, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		return nil, err
	}
	report.TableExists = len(actual) > 0

	present := make(map[string]bool, len(actual))
	for _, col := range actual {
		present[col.Field] = true
	}

	for _, col := range modelColumns(model) {
		if !present[col] {
			report.MissingColumns = append(report.MissingColumns, col)
		}
	}

	report.Matched = report.TableExists && len(report.MissingColumns) == 0
	return report, nil
}

// modelColumns returns the column names declared in the model's gorm tags, in field order.
func modelColumns(model any) []string {
	t := reflect.TypeOf(model)
	var columns []string
	for i := 0; i < t.NumField(); i++ {
		if col := parseGormColumn(t.Field(i).Tag.Get("gorm")); col != "" {
			columns = append(columns, col)
		}
	}
	return columns
}

func parseGormColumn(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if col, ok := strings.CutPrefix(part, "column:"); ok {
			return col
		}
	}
	return ""
}

func schemaError(r *SchemaReport) error {
	if !r.TableExists {
		return fmt.Errorf("%w: table %s not found", ErrSchemaMismatch, r.Table)
	}
	return fmt.Errorf("%w: %s is missing columns %s", ErrSchemaMismatch, r.Table, strings.Join(r.MissingColumns, ", "))
}
