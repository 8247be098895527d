// Package palette provides the catalogue of named color palettes used to
// generate the site's stylesheet tokens.
package palette

import (
	"fmt"
	"strings"
)

// ColorValue is a color expression in the stylesheet's notation, for example
// "oklch(0.69 0.11 198)" or "oklch(1 0 0 / 10%)". It is never parsed.
type ColorValue string

// Role identifies a semantic color slot shared by all palettes.
type Role int

// Semantic color roles, in canonical order.
const (
	RoleBackground Role = iota
	RoleForeground
	RoleCard
	RoleCardForeground
	RolePopover
	RolePopoverForeground
	RolePrimary
	RolePrimaryForeground
	RoleSecondary
	RoleSecondaryForeground
	RoleAccent
	RoleAccentForeground
	RoleMuted
	RoleMutedForeground
	RoleDestructive
	RoleDestructiveForeground
	RoleBorder
	RoleInput
	RoleRing

	roleCount
)

var roleNames = [roleCount]string{
	RoleBackground:            "background",
	RoleForeground:            "foreground",
	RoleCard:                  "card",
	RoleCardForeground:        "cardForeground",
	RolePopover:               "popover",
	RolePopoverForeground:     "popoverForeground",
	RolePrimary:               "primary",
	RolePrimaryForeground:     "primaryForeground",
	RoleSecondary:             "secondary",
	RoleSecondaryForeground:   "secondaryForeground",
	RoleAccent:                "accent",
	RoleAccentForeground:      "accentForeground",
	RoleMuted:                 "muted",
	RoleMutedForeground:       "mutedForeground",
	RoleDestructive:           "destructive",
	RoleDestructiveForeground: "destructiveForeground",
	RoleBorder:                "border",
	RoleInput:                 "input",
	RoleRing:                  "ring",
}

// Roles returns every role in canonical order.
func Roles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// String returns the mixed-case role name, e.g. "cardForeground".
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole resolves a role name as returned by Role.String.
func ParseRole(name string) (Role, error) {
	name = strings.TrimSpace(name)
	for r, candidate := range roleNames {
		if candidate == name {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("unknown color role %q", name)
}

// Mode is an appearance mode.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Modes lists the appearance modes in output order.
func Modes() []Mode {
	return []Mode{ModeLight, ModeDark}
}

// ColorRoles assigns a color to every semantic role for one appearance mode.
type ColorRoles struct {
	Background            ColorValue `yaml:"background" json:"background"`
	Foreground            ColorValue `yaml:"foreground" json:"foreground"`
	Card                  ColorValue `yaml:"card" json:"card"`
	CardForeground        ColorValue `yaml:"cardForeground" json:"cardForeground"`
	Popover               ColorValue `yaml:"popover" json:"popover"`
	PopoverForeground     ColorValue `yaml:"popoverForeground" json:"popoverForeground"`
	Primary               ColorValue `yaml:"primary" json:"primary"`
	PrimaryForeground     ColorValue `yaml:"primaryForeground" json:"primaryForeground"`
	Secondary             ColorValue `yaml:"secondary" json:"secondary"`
	SecondaryForeground   ColorValue `yaml:"secondaryForeground" json:"secondaryForeground"`
	Accent                ColorValue `yaml:"accent" json:"accent"`
	AccentForeground      ColorValue `yaml:"accentForeground" json:"accentForeground"`
	Muted                 ColorValue `yaml:"muted" json:"muted"`
	MutedForeground       ColorValue `yaml:"mutedForeground" json:"mutedForeground"`
	Destructive           ColorValue `yaml:"destructive" json:"destructive"`
	DestructiveForeground ColorValue `yaml:"destructiveForeground" json:"destructiveForeground"`
	Border                ColorValue `yaml:"border" json:"border"`
	Input                 ColorValue `yaml:"input" json:"input"`
	Ring                  ColorValue `yaml:"ring" json:"ring"`
}

// Get returns the color assigned to role.
func (c ColorRoles) Get(role Role) ColorValue {
	switch role {
	case RoleBackground:
		return c.Background
	case RoleForeground:
		return c.Foreground
	case RoleCard:
		return c.Card
	case RoleCardForeground:
		return c.CardForeground
	case RolePopover:
		return c.Popover
	case RolePopoverForeground:
		return c.PopoverForeground
	case RolePrimary:
		return c.Primary
	case RolePrimaryForeground:
		return c.PrimaryForeground
	case RoleSecondary:
		return c.Secondary
	case RoleSecondaryForeground:
		return c.SecondaryForeground
	case RoleAccent:
		return c.Accent
	case RoleAccentForeground:
		return c.AccentForeground
	case RoleMuted:
		return c.Muted
	case RoleMutedForeground:
		return c.MutedForeground
	case RoleDestructive:
		return c.Destructive
	case RoleDestructiveForeground:
		return c.DestructiveForeground
	case RoleBorder:
		return c.Border
	case RoleInput:
		return c.Input
	case RoleRing:
		return c.Ring
	default:
		return ""
	}
}

// Missing returns the roles with no color assigned, in canonical order.
func (c ColorRoles) Missing() []Role {
	var missing []Role
	for _, role := range Roles() {
		if strings.TrimSpace(string(c.Get(role))) == "" {
			missing = append(missing, role)
		}
	}
	return missing
}
