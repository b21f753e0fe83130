package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedEmulator is returned for emulator names without a model.
var ErrUnsupportedEmulator = errors.New("unsupported emulator")

const (
	EmulatorArcturus = "arcturus"
	EmulatorComet    = "comet"
	EmulatorPlus     = "plus"
)

// DBItem is an emulator furniture row normalized for comparison with furnidata.
type DBItem struct {
	ID          int     `json:"id"`
	SpriteID    int     `json:"sprite_id"`
	ItemName    string  `json:"item_name"`   // classname
	PublicName  string  `json:"public_name"` // name
	Width       int     `json:"width"`       // xdim
	Length      int     `json:"length"`      // ydim
	StackHeight float64 `json:"stack_height"`
	CanStack    bool    `json:"can_stack"`
	CanSit      bool    `json:"can_sit"`
	CanWalk     bool    `json:"can_walk"` // canstandon
	CanLay      bool    `json:"can_lay"`
	Type        string  `json:"type"` // s or i
	Interaction string  `json:"interaction_type"`
	IsRare      bool    `json:"is_rare"`
}

// Row is implemented by every emulator table model.
type Row interface {
	TableName() string
	ToNormalized() DBItem
}

// Normalize maps an emulator name, including the legacy "plusemu" spelling,
// to one of the Emulator constants.
func Normalize(emulator string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(emulator)) {
	case EmulatorArcturus:
		return EmulatorArcturus, nil
	case EmulatorComet:
		return EmulatorComet, nil
	case EmulatorPlus, "plusemu":
		return EmulatorPlus, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEmulator, emulator)
	}
}

// ModelFor returns the zero row model for an emulator.
func ModelFor(emulator string) (Row, error) {
	name, err := Normalize(emulator)
	if err != nil {
		return nil, err
	}
	switch name {
	case EmulatorComet:
		return CometFurniture{}, nil
	case EmulatorPlus:
		return PlusFurniture{}, nil
	default:
		return ArcturusItemsBase{}, nil
	}
}
