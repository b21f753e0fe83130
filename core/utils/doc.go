// Package utils provides common utility functions for the furnidata-manager application.
// It includes the total conversion helpers shared by the decoder and the database layer:
// numeric text that fails to parse becomes 0, and a value is truthy only when it is "1"
// or "true" in any letter case.
package utils
