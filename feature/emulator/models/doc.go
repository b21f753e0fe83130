// Package models contains the furniture table models of supported Habbo emulators.
//
// Each model maps one emulator's furniture definition table as a GORM model and
// converts its rows to the common DBItem, which the audit feature compares
// against decoded furnidata.
//
// # Supported Emulators
//
//   - Arcturus: 'items_base' table.
//   - Comet: 'furniture' table, enum('0','1') flags.
//   - Plus: 'furniture' table, tinyint flags, no lay flag.
package models
