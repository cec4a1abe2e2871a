package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// IconType identifies how an icon's value is interpreted
type IconType string

const (
	IconNone   IconType = "none"
	IconEmoji  IconType = "emoji"
	IconSymbol IconType = "sfSymbol" // named symbol from a free icon library
	IconCustom IconType = "custom"   // uploaded image bytes
)

// Icon decorates a tag or folder. The zero value has no icon.
type Icon struct {
	Type  IconType
	Value string // emoji or symbol name
	Data  []byte // custom image
}

// Emoji creates an emoji icon
func Emoji(value string) Icon {
	return Icon{Type: IconEmoji, Value: value}
}

// Symbol creates a named symbol icon
func Symbol(name string) Icon {
	return Icon{Type: IconSymbol, Value: name}
}

// Custom creates an icon from uploaded image bytes
func Custom(data []byte) Icon {
	return Icon{Type: IconCustom, Data: data}
}

// Preset icons
var (
	IconFolder = Emoji("📁")
	IconHome   = Emoji("🏠")
	IconWork   = Emoji("💼")
	IconStar   = Emoji("⭐")
	IconHeart  = Emoji("❤️")
	IconBook   = Emoji("📚")
	IconIdea   = Emoji("💡")
	IconFlag   = Emoji("🚩")

	IconSymbolFolder = Symbol("folder.fill")
	IconSymbolNumber = Symbol("number")
)

// HasIcon reports whether the icon is set
func (i Icon) HasIcon() bool {
	switch i.Type {
	case IconEmoji, IconSymbol:
		return i.Value != ""
	case IconCustom:
		return len(i.Data) > 0
	default:
		return false
	}
}

// Glyph returns a short terminal-friendly rendering of the icon
func (i Icon) Glyph() string {
	if !i.HasIcon() {
		return ""
	}
	switch i.Type {
	case IconEmoji:
		return i.Value
	case IconSymbol:
		if i.Value == "number" {
			return "#"
		}
		return "◆"
	default:
		return "▣"
	}
}

// String renders the icon in the form accepted by ParseIcon
func (i Icon) String() string {
	if !i.HasIcon() {
		return string(IconNone)
	}
	switch i.Type {
	case IconEmoji:
		return "emoji:" + i.Value
	case IconSymbol:
		return "symbol:" + i.Value
	default:
		return "custom:" + base64.StdEncoding.EncodeToString(i.Data)
	}
}

// ParseIcon reads "none", "emoji:<e>", "symbol:<name>" or
// "custom:<base64>". A bare value is taken as an emoji when it contains
// non-ASCII characters and as a symbol name otherwise.
func ParseIcon(s string) (Icon, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == string(IconNone) {
		return Icon{}, nil
	}

	prefix, value, found := strings.Cut(s, ":")
	if !found {
		if utf8.RuneCountInString(s) != len(s) {
			return Emoji(s), nil
		}
		return Symbol(s), nil
	}

	switch prefix {
	case "emoji":
		return Emoji(value), nil
	case "symbol", string(IconSymbol):
		return Symbol(value), nil
	case "custom":
		data, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return Icon{}, fmt.Errorf("invalid custom icon data: %w", err)
		}
		return Custom(data), nil
	default:
		return Icon{}, fmt.Errorf("unknown icon type %q", prefix)
	}
}

type iconJSON struct {
	Type  IconType `json:"type"`
	Value string   `json:"value,omitempty"`
}

// MarshalJSON encodes as {"type": ..., "value": ...}; custom image bytes
// travel base64-encoded in value
func (i Icon) MarshalJSON() ([]byte, error) {
	if !i.HasIcon() {
		return json.Marshal(iconJSON{Type: IconNone})
	}
	out := iconJSON{Type: i.Type, Value: i.Value}
	if i.Type == IconCustom {
		out.Value = base64.StdEncoding.EncodeToString(i.Data)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the MarshalJSON form
func (i *Icon) UnmarshalJSON(b []byte) error {
	var in iconJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	switch in.Type {
	case IconNone, "":
		*i = Icon{}
	case IconEmoji:
		*i = Emoji(in.Value)
	case IconSymbol:
		*i = Symbol(in.Value)
	case IconCustom:
		data, err := base64.StdEncoding.DecodeString(in.Value)
		if err != nil {
			return fmt.Errorf("invalid custom icon data: %w", err)
		}
		*i = Custom(data)
	default:
		return fmt.Errorf("unknown icon type %q", in.Type)
	}
	return nil
}

// InheritedIcon resolves the icon to display for a label: its own icon if
// set, else the nearest ancestor's, else fallback. chain is in the order
// Ancestors returns it, root first.
func InheritedIcon(own Icon, chain []Icon, fallback Icon) Icon {
	if own.HasIcon() {
		return own
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].HasIcon() {
			return chain[i]
		}
	}
	return fallback
}
