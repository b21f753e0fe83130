// Package database opens the emulator database and inspects its schema.
//
// Connect picks the gorm dialector from Config.Driver (mysql or sqlite) and
// pings the server within Config.TimeoutSeconds. The database is optional:
// commands and the server log a warning and run without the audit feature
// when Connect fails.
//
// GetTableColumns lists a table's columns (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite) so callers can compare them with their gorm models.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	columns, err := database.GetTableColumns(db, "items_base")
package database
