package term

import "github.com/gdamore/tcell/v2"

type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeySpace
	KeyRune
	KeyResize
	KeyInterrupt
)

var keyKindNames = map[KeyKind]string{
	KeyOther:     "other",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeySpace:     "space",
	KeyRune:      "rune",
	KeyResize:    "resize",
	KeyInterrupt: "interrupt",
}

func (k KeyKind) String() string {
	if name, ok := keyKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Key is a single decoded keystroke. Rune is set only for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

func Rune(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

func (k Key) Is(kind KeyKind) bool { return k.Kind == kind }

// IsRune reports whether k is the printable character r.
func (k Key) IsRune(r rune) bool { return k.Kind == KeyRune && k.Rune == r }

// IsDigit reports whether k is an ASCII digit.
func (k Key) IsDigit() bool { return k.Kind == KeyRune && k.Rune >= '0' && k.Rune <= '9' }

// IsPrintable reports whether k carries a character that can go into a
// text buffer. Space counts.
func (k Key) IsPrintable() bool {
	if k.Kind == KeySpace {
		return true
	}
	return k.Kind == KeyRune && k.Rune >= 32 && k.Rune != 127
}

// Char returns the character carried by a printable key.
func (k Key) Char() rune {
	if k.Kind == KeySpace {
		return ' '
	}
	return k.Rune
}

func decodeKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return Key{Kind: KeyUp}
	case tcell.KeyDown:
		return Key{Kind: KeyDown}
	case tcell.KeyLeft:
		return Key{Kind: KeyLeft}
	case tcell.KeyRight:
		return Key{Kind: KeyRight}
	case tcell.KeyEnter, tcell.KeyCtrlJ:
		return Key{Kind: KeyEnter}
	case tcell.KeyESC:
		return Key{Kind: KeyEscape}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Kind: KeyBackspace}
	case tcell.KeyCtrlC:
		return Key{Kind: KeyInterrupt}
	case tcell.KeyRune:
		switch ch := ev.Rune(); ch {
		case '\n', '\r':
			return Key{Kind: KeyEnter}
		case ' ':
			return Key{Kind: KeySpace}
		default:
			return Rune(ch)
		}
	}
	return Key{Kind: KeyOther}
}
