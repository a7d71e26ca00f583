package commit

import (
	"fmt"
	"strings"
)

// Type is one entry of the fixed commit-type taxonomy.
type Type string

const (
	Feat     Type = "feat"
	Fix      Type = "fix"
	Docs     Type = "docs"
	Style    Type = "style"
	Refactor Type = "refactor"
	Test     Type = "test"
	Chore    Type = "chore"
)

var (
	taxonomy = []Type{Feat, Fix, Docs, Style, Refactor, Test, Chore}

	emojis = map[Type]string{
		Feat:     "🚀",
		Fix:      "🔨",
		Docs:     "📄",
		Style:    "🎨",
		Refactor: "🧰",
		Test:     "🧪",
		Chore:    "🧹",
	}
)

// Types returns the taxonomy in menu order.
func Types() []Type {
	out := make([]Type, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// Emoji returns the decoration shown in emoji mode.
func (t Type) Emoji() string {
	return emojis[t]
}

// Label renders the type the way the menu shows it in the given mode.
func (t Type) Label(mode Mode) string {
	if mode == ModeEmoji {
		return fmt.Sprintf("%s %s", t.Emoji(), t)
	}
	return string(t)
}

// Mode selects between plain and emoji-decorated menu labels.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeEmoji  Mode = "emoji"
)

// String implements pflag.Value.
func (m *Mode) String() string {
	if m == nil || *m == "" {
		return string(ModeNormal)
	}
	return string(*m)
}

// Set implements pflag.Value.
func (m *Mode) Set(v string) error {
	switch Mode(strings.ToLower(strings.TrimSpace(v))) {
	case ModeNormal:
		*m = ModeNormal
	case ModeEmoji:
		*m = ModeEmoji
	default:
		return fmt.Errorf("invalid mode %q (want %q or %q)", v, ModeNormal, ModeEmoji)
	}
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}
