package audit

import (
	"fmt"
	"sort"
	"strings"

	"furnidata-manager/core/furnidata"
	"furnidata-manager/feature/emulator/models"
)

// indexBySprite keys rows by sprite id. The first row of a sprite id wins.
func indexBySprite(rows []models.DBItem) map[int]models.DBItem {
	index := make(map[int]models.DBItem, len(rows))
	for _, row := range rows {
		if _, ok := index[row.SpriteID]; !ok {
			index[row.SpriteID] = row
		}
	}
	return index
}

// compareItem lists every field where item and row disagree.
func compareItem(item furnidata.Item, row models.DBItem) []string {
	var mismatches []string

	if item.ClassName != row.ItemName {
		mismatches = append(mismatches, fmt.Sprintf("ID %d: classname mismatch (furnidata: '%s', db: '%s')", item.ID, item.ClassName, row.ItemName))
	}
	if item.Name != row.PublicName {
		mismatches = append(mismatches, fmt.Sprintf("ID %d: name mismatch (furnidata: '%s', db: '%s')", item.ID, item.Name, row.PublicName))
	}
	if item.XDim != row.Width {
		mismatches = append(mismatches, fmt.Sprintf("ID %d: width mismatch (furnidata: %d, db: %d)", item.ID, item.XDim, row.Width))
	}
	if item.YDim != row.Length {
		mismatches = append(mismatches, fmt.Sprintf("ID %d: length mismatch (furnidata: %d, db: %d)", item.ID, item.YDim, row.Length))
	}
	if string(item.Kind) != strings.ToLower(row.Type) {
		mismatches = append(mismatches, fmt.Sprintf("ID %d: type mismatch (furnidata: %s, db: %s)", item.ID, item.Kind, row.Type))
	}
	if item.CanSitOn != row.CanSit {
		mismatches = append(mismatches, fmt.Sprintf("ID %d: can_sit mismatch (furnidata: %v, db: %v)", item.ID, item.CanSitOn, row.CanSit))
	}
	if item.CanStandOn != row.CanWalk {
		mismatches = append(mismatches, fmt.Sprintf("ID %d: can_walk/stand mismatch (furnidata: %v, db: %v)", item.ID, item.CanStandOn, row.CanWalk))
	}
	if item.CanLayOn != row.CanLay {
		mismatches = append(mismatches, fmt.Sprintf("ID %d: can_lay mismatch (furnidata: %v, db: %v)", item.ID, item.CanLayOn, row.CanLay))
	}

	return mismatches
}

// compare fills report from the decoded items and emulator rows.
func compare(report *Report, items []furnidata.Item, rows []models.DBItem) {
	index := indexBySprite(rows)
	seen := make(map[int]bool, len(items))

	report.FurnidataItems = len(items)
	report.DatabaseItems = len(rows)
	report.Mismatches = []string{}

	for _, item := range items {
		seen[item.ID] = true
		row, ok := index[item.ID]
		if !ok {
			report.MissingInDatabase++
			report.Mismatches = append(report.Mismatches, fmt.Sprintf("ID %d (%s): missing in database", item.ID, item.ClassName))
			continue
		}
		if diff := compareItem(item, row); len(diff) > 0 {
			report.Mismatched++
			report.Mismatches = append(report.Mismatches, diff...)
		}
	}

	var orphans []models.DBItem
	for sprite, row := range index {
		if !seen[sprite] {
			orphans = append(orphans, row)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].SpriteID < orphans[j].SpriteID })
	for _, row := range orphans {
		report.MissingInFurnidata++
		report.Mismatches = append(report.Mismatches, fmt.Sprintf("sprite %d (%s): missing in furnidata", row.SpriteID, row.ItemName))
	}

	report.Matched = len(report.Mismatches) == 0
}
