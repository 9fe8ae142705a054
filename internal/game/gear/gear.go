// Package gear layers equippable stat modifiers over a pet. Gear never
// rewrites the pet's stored attributes: effective values are recomputed
// from the equipped stack at query time.
package gear

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies an equippable gear variant.
type Kind string

const (
	// KindArmor raises the effective max health while worn.
	KindArmor Kind = "armor"
	// KindAmulet grants bonus happiness after every turn advance.
	KindAmulet Kind = "amulet"
)

const (
	// ArmorMaxHealthBonus is the effective max-health gain per equipped armor.
	ArmorMaxHealthBonus = 30
	// AmuletHappinessPerTurn is the happiness gain per equipped amulet
	// applied after each turn advance.
	AmuletHappinessPerTurn = 15
)

// ParseKind resolves a player-supplied gear name.
//
// Precondition: none; s may be any string.
// Postcondition: returns the matching Kind, or an error for unknown input.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindArmor:
		return KindArmor, nil
	case KindAmulet:
		return KindAmulet, nil
	default:
		return "", fmt.Errorf("unknown gear kind %q", s)
	}
}

// DisplayName returns the item label shown to the player.
func (k Kind) DisplayName() string {
	switch k {
	case KindArmor:
		return "Golden Armor"
	case KindAmulet:
		return "Magic Amulet"
	default:
		return string(k)
	}
}

// EffectText returns the short bonus description shown on equip and in help.
func (k Kind) EffectText() string {
	switch k {
	case KindArmor:
		return "+30 HP"
	case KindAmulet:
		return "+15 Happiness/turn"
	default:
		return ""
	}
}

// BonusLine returns the status-panel line shown per equipped item.
func (k Kind) BonusLine() string {
	switch k {
	case KindArmor:
		return fmt.Sprintf("Armor Bonus: +%d Max HP", ArmorMaxHealthBonus)
	case KindAmulet:
		return fmt.Sprintf("Amulet Bonus: +%d Happiness/turn", AmuletHappinessPerTurn)
	default:
		return ""
	}
}

// Item is one equipped gear instance.
type Item struct {
	// InstanceID is the unique identifier for this equipped instance.
	InstanceID string
	// Kind is the gear variant.
	Kind Kind
}

// NewItem mints a gear instance of the given kind.
func NewItem(k Kind) Item {
	return Item{
		InstanceID: uuid.New().String(),
		Kind:       k,
	}
}
