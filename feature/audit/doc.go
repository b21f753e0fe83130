// Package audit cross-checks decoded furnidata against the emulator's
// furniture table.
//
// Rows are read through the emulator models in feature/emulator/models and
// paired with furnidata items by sprite id. Alias clones are skipped. Before
// rows are read the table is checked against the model's gorm columns, so a
// wrong emulator setting fails with ErrSchemaMismatch instead of a SQL error.
//
// Routes:
//
//	GET /audit             full report
//	GET /audit/schema      table column check
//	GET /audit/:identifier single item
package audit
