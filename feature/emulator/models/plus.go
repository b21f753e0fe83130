package models

// PlusFurniture represents the 'furniture' table in Plus. It has no lay flag.
type PlusFurniture struct {
	ID              int     `gorm:"column:id;primaryKey"`
	SpriteID        int     `gorm:"column:sprite_id"`
	ItemName        string  `gorm:"column:item_name"`
	PublicName      string  `gorm:"column:public_name"`
	Width           int     `gorm:"column:width"`
	Length          int     `gorm:"column:length"`
	StackHeight     float64 `gorm:"column:stack_height"`
	CanStack        int     `gorm:"column:can_stack"`
	CanSit          int     `gorm:"column:can_sit"`
	IsWalkable      int     `gorm:"column:is_walkable"`
	Type            string  `gorm:"column:type"`
	InteractionType string  `gorm:"column:interaction_type"`
	IsRare          int     `gorm:"column:is_rare"`
}

func (PlusFurniture) TableName() string {
	return "furniture"
}

// ToNormalized converts the Plus row to a DBItem.
func (p PlusFurniture) ToNormalized() DBItem {
	return DBItem{
		ID:          p.ID,
		SpriteID:    p.SpriteID,
		ItemName:    p.ItemName,
		PublicName:  p.PublicName,
		Width:       p.Width,
		Length:      p.Length,
		StackHeight: p.StackHeight,
		CanStack:    p.CanStack == 1,
		CanSit:      p.CanSit == 1,
		CanWalk:     p.IsWalkable == 1,
		Type:        p.Type,
		Interaction: p.InteractionType,
		IsRare:      p.IsRare == 1,
	}
}
