package models

import "furnidata-manager/core/utils"

// CometFurniture represents the 'furniture' table in Comet.
// Comet stores flags as enum('0','1') and stack_height as varchar.
type CometFurniture struct {
	ID              int    `gorm:"column:id;primaryKey"`
	SpriteID        int    `gorm:"column:sprite_id"`
	ItemName        string `gorm:"column:item_name"`
	PublicName      string `gorm:"column:public_name"`
	Width           int    `gorm:"column:width"`
	Length          int    `gorm:"column:length"`
	StackHeight     string `gorm:"column:stack_height"`
	CanStack        string `gorm:"column:can_stack"`
	CanSit          string `gorm:"column:can_sit"`
	CanLay          string `gorm:"column:can_lay"`
	IsWalkable      string `gorm:"column:is_walkable"`
	Type            string `gorm:"column:type"`
	InteractionType string `gorm:"column:interaction_type"`
}

func (CometFurniture) TableName() string {
	return "furniture"
}

// ToNormalized converts the Comet row to a DBItem.
func (c CometFurniture) ToNormalized() DBItem {
	return DBItem{
		ID:          c.ID,
		SpriteID:    c.SpriteID,
		ItemName:    c.ItemName,
		PublicName:  c.PublicName,
		Width:       c.Width,
		Length:      c.Length,
		StackHeight: utils.ToFloat(c.StackHeight),
		CanStack:    utils.IsTruthy(c.CanStack),
		CanSit:      utils.IsTruthy(c.CanSit),
		CanWalk:     utils.IsTruthy(c.IsWalkable),
		CanLay:      utils.IsTruthy(c.CanLay),
		Type:        c.Type,
		Interaction: c.InteractionType,
	}
}
