package inspect

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/npillmayer/staticvec"
)

// Slot describes one slot of a vector's storage block.
type Slot struct {
	Index int
	Live  bool
	Text  string // textual form of a live element, empty for vacant slots
}

// Snapshot is a read-only description of a vector.
type Snapshot struct {
	Type     string // element type
	Capacity int
	Length   int
	Layout   staticvec.Layout
	Slots    []Slot
}

// MaxTextLen is the maximum length in bytes of a slot's text. Longer texts
// are cut at a rune boundary and marked with "...".
const MaxTextLen = 256

// Capture takes a snapshot of v. Live elements are formatted with fmt, so
// element types may control their text by implementing fmt.Stringer.
// A nil vector yields a snapshot without slots.
func Capture[T any](v *staticvec.Vector[T]) Snapshot {
	snap := Snapshot{Type: reflect.TypeFor[T]().String()}
	if v == nil {
		return snap
	}
	snap = Snapshot{
		Type:     snap.Type,
		Capacity: v.Cap(),
		Length:   v.Len(),
		Layout:   v.Layout(),
		Slots:    make([]Slot, v.Cap()),
	}
	for i := range snap.Slots {
		snap.Slots[i].Index = i
	}
	for i, p := range v.All() {
		snap.Slots[i].Live = true
		snap.Slots[i].Text = clip(fmt.Sprint(*p))
	}
	return snap
}

func clip(text string) string {
	if len(text) <= MaxTextLen {
		return text
	}
	cut := MaxTextLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

// Title returns a one-line summary of the snapshot.
func (snap Snapshot) Title() string {
	return fmt.Sprintf("Vector[%s] len=%d cap=%d layout=%s",
		snap.Type, snap.Length, snap.Capacity, snap.Layout)
}
