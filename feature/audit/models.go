package audit

import (
	"errors"

	"furnidata-manager/core/furnidata"
	"furnidata-manager/feature/catalog"
	"furnidata-manager/feature/emulator/models"
)

var (
	// ErrNoDatabase is returned when the service runs without an emulator database.
	ErrNoDatabase = errors.New("emulator database is not configured")
	// ErrSchemaMismatch is returned when the emulator table lacks columns the audit reads.
	ErrSchemaMismatch = errors.New("emulator schema mismatch")
)

// Report is the result of cross-checking a catalog against the emulator table.
type Report struct {
	Source             catalog.Source   `json:"source"`
	Format             furnidata.Format `json:"format"`
	Emulator           string           `json:"emulator"`
	FurnidataItems     int              `json:"furnidata_items"`
	DatabaseItems      int              `json:"database_items"`
	MissingInDatabase  int              `json:"missing_in_database"`
	MissingInFurnidata int              `json:"missing_in_furnidata"`
	Mismatched         int              `json:"mismatched"`
	Matched            bool             `json:"matched"`
	Mismatches         []string         `json:"mismatches"`
}

// ItemReport pairs the catalog entries of one identifier with its emulator row.
type ItemReport struct {
	Identifier string           `json:"identifier"`
	Emulator   string           `json:"emulator"`
	Furnidata  []furnidata.Item `json:"furnidata"`
	Database   *models.DBItem   `json:"database"`
	Mismatches []string         `json:"mismatches"`
}

// SchemaReport lists the model columns missing from the emulator table.
type SchemaReport struct {
	Emulator       string   `json:"emulator"`
	Table          string   `json:"table"`
	TableExists    bool     `json:"table_exists"`
	MissingColumns []string `json:"missing_columns"`
	Matched        bool     `json:"matched"`
}
