package models

// ArcturusItemsBase represents the 'items_base' table in Arcturus Morningstar.
type ArcturusItemsBase struct {
	ID              int     `gorm:"column:id;primaryKey"`
	SpriteID        int     `gorm:"column:sprite_id"`
	ItemName        string  `gorm:"column:item_name"`
	PublicName      string  `gorm:"column:public_name"`
	Width           int     `gorm:"column:width"`
	Length          int     `gorm:"column:length"`
	StackHeight     float64 `gorm:"column:stack_height"`
	AllowStack      int     `gorm:"column:allow_stack"` // tinyint(1)
	AllowSit        int     `gorm:"column:allow_sit"`   // tinyint(1)
	AllowLay        int     `gorm:"column:allow_lay"`   // tinyint(1)
	AllowWalk       int     `gorm:"column:allow_walk"`  // tinyint(1)
	Type            string  `gorm:"column:type"`
	InteractionType string  `gorm:"column:interaction_type"`
}

func (ArcturusItemsBase) TableName() string {
	return "items_base"
}

// ToNormalized converts the Arcturus row to a DBItem.
func (a ArcturusItemsBase) ToNormalized() DBItem {
	return DBItem{
		ID:          a.ID,
		SpriteID:    a.SpriteID,
		ItemName:    a.ItemName,
		PublicName:  a.PublicName,
		Width:       a.Width,
		Length:      a.Length,
		StackHeight: a.StackHeight,
		CanStack:    a.AllowStack == 1,
		CanSit:      a.AllowSit == 1,
		CanWalk:     a.AllowWalk == 1,
		CanLay:      a.AllowLay == 1,
		Type:        a.Type,
		Interaction: a.InteractionType,
	}
}
