// Package wheel implements the scroll geometry of a horizontal value wheel:
// padding, item sizing, initial centering, snapping and per-slot emphasis.
package wheel

import (
	"fmt"
	"math"
)

const (
	// VisibleItems is the number of slots visible at once.
	VisibleItems = 5
	// Padding is the number of blank slots on each end of the dataset.
	Padding = 2
)

// Slot is one entry of the padded dataset.
type Slot struct {
	Value int
	Blank bool
}

// Label returns the zero-padded two digit label, or "" for padding.
func (s Slot) Label() string {
	if s.Blank {
		return ""
	}
	return fmt.Sprintf("%02d", s.Value)
}

// Emphasis is the visual weight of a slot.
type Emphasis struct {
	Opacity float64
	Scale   float64
}

// Emphasis levels by distance from the centered slot.
var (
	EmphasisCenter = Emphasis{Opacity: 1, Scale: 1.2}
	EmphasisNear   = Emphasis{Opacity: 0.6, Scale: 0.9}
	EmphasisFar    = Emphasis{Opacity: 0.3, Scale: 0.8}
)

// Item is a visible slot ready to render.
type Item struct {
	Slot     Slot
	Index    int // Index into the padded dataset
	Emphasis Emphasis
	Centered bool
}

// Wheel tracks the scroll position over a dataset. The zero value is an
// empty wheel.
type Wheel struct {
	values    []int
	slots     []Slot
	itemWidth float64
	pos       float64 // Scroll position in slots; 0 centers the first value
	rtl       bool
}

// New returns a wheel over values centered as InitialIndex describes.
func New(values []int, current *int, rtl bool) Wheel {
	w := Wheel{rtl: rtl}
	w.SetValues(values, current)
	return w
}

// SetValues replaces the dataset and recenters on current.
func (w *Wheel) SetValues(values []int, current *int) {
	w.values = append([]int(nil), values...)
	w.slots = pad(w.values)
	w.pos = float64(InitialIndex(w.values, current) - Padding)
}

func pad(values []int) []Slot {
	slots := make([]Slot, 0, len(values)+2*Padding)
	for i := 0; i < Padding; i++ {
		slots = append(slots, Slot{Blank: true})
	}
	for _, v := range values {
		slots = append(slots, Slot{Value: v})
	}
	for i := 0; i < Padding; i++ {
		slots = append(slots, Slot{Blank: true})
	}
	return slots
}

// InitialIndex returns the padded index to center on mount. With a current
// value and more than VisibleItems padded slots it is the value nearest to
// current, ties going to the first occurrence; otherwise the first value.
func InitialIndex(values []int, current *int) int {
	if current == nil || len(values)+2*Padding <= VisibleItems {
		return Padding
	}
	best := 0
	bestDiff := absInt(values[0] - *current)
	for i, v := range values[1:] {
		if d := absInt(v - *current); d < bestDiff {
			best, bestDiff = i+1, d
		}
	}
	return best + Padding
}

// SetWidth applies a measured container width. The centered slot is kept.
func (w *Wheel) SetWidth(width int) {
	if width <= 0 {
		w.itemWidth = 0
		return
	}
	w.itemWidth = float64(width) / VisibleItems
}

// ItemWidth returns the width of one slot, 0 before layout.
func (w Wheel) ItemWidth() float64 {
	return w.itemWidth
}

// Values returns the unpadded dataset.
func (w Wheel) Values() []int {
	return w.values
}

// Slots returns the padded dataset in logical order.
func (w Wheel) Slots() []Slot {
	return w.slots
}

// Len returns the number of real values.
func (w Wheel) Len() int {
	return len(w.values)
}

// Empty reports whether the wheel has no real values.
func (w Wheel) Empty() bool {
	return len(w.values) == 0
}

// RTL reports whether the wheel is mirrored.
func (w Wheel) RTL() bool {
	return w.rtl
}

// Position returns the scroll position in slots.
func (w Wheel) Position() float64 {
	return w.pos
}

// Offset returns the scroll offset in pixels.
func (w Wheel) Offset() float64 {
	return w.pos * w.itemWidth
}

// MaxPosition returns the largest scroll position in slots.
func (w Wheel) MaxPosition() float64 {
	if len(w.values) == 0 {
		return 0
	}
	return float64(len(w.values) - 1)
}

// ScrollTo sets the scroll offset in pixels. It is ignored before layout.
func (w *Wheel) ScrollTo(offset float64) {
	if w.itemWidth <= 0 {
		return
	}
	w.SetPosition(offset / w.itemWidth)
}

// ScrollBy moves the scroll offset by delta pixels in logical order.
func (w *Wheel) ScrollBy(delta float64) {
	if w.itemWidth <= 0 {
		return
	}
	w.SetPosition(w.pos + delta/w.itemWidth)
}

// SetPosition sets the scroll position in slots, clamped to the dataset.
func (w *Wheel) SetPosition(pos float64) {
	w.pos = math.Max(0, math.Min(pos, w.MaxPosition()))
}

// Visual converts a delta in screen direction (positive is rightwards) to
// logical order. Right-to-left wheels run backwards on screen.
func (w Wheel) Visual(delta float64) float64 {
	if w.rtl {
		return -delta
	}
	return delta
}

// CenterIndex returns the padded index of the slot nearest the center.
func (w Wheel) CenterIndex() int {
	return int(math.Round(w.pos)) + Padding
}

// CenterIndexAt returns the padded index centered at a pixel offset.
func (w Wheel) CenterIndexAt(offset float64) int {
	if w.itemWidth <= 0 {
		return w.CenterIndex()
	}
	return int(math.Round(offset/w.itemWidth)) + Padding
}

// Settle snaps to the nearest slot and returns its value. It reports false
// when the wheel has no values.
func (w *Wheel) Settle() (int, bool) {
	if len(w.values) == 0 {
		return 0, false
	}
	w.SetPosition(math.Round(w.pos))
	slot := w.slots[w.CenterIndex()]
	return slot.Value, true
}

// Value returns the value currently nearest the center without snapping.
func (w Wheel) Value() (int, bool) {
	if len(w.values) == 0 {
		return 0, false
	}
	return w.slots[w.CenterIndex()].Value, true
}

// Settled reports whether the position sits exactly on a slot.
func (w Wheel) Settled() bool {
	return w.pos == math.Round(w.pos)
}

// EmphasisAt returns the emphasis of padded slot i at the current position,
// interpolated linearly between the center, near and far levels.
func (w Wheel) EmphasisAt(i int) Emphasis {
	d := math.Abs(float64(i) - (w.pos + Padding))
	switch {
	case d <= 1:
		return lerp(EmphasisCenter, EmphasisNear, d)
	case d <= 2:
		return lerp(EmphasisNear, EmphasisFar, d-1)
	default:
		return EmphasisFar
	}
}

func lerp(a, b Emphasis, t float64) Emphasis {
	return Emphasis{
		Opacity: a.Opacity + (b.Opacity-a.Opacity)*t,
		Scale:   a.Scale + (b.Scale-a.Scale)*t,
	}
}

// Window returns the VisibleItems slots around the center in screen order.
func (w Wheel) Window() []Item {
	center := w.CenterIndex()
	items := make([]Item, 0, VisibleItems)
	for i := center - Padding; i <= center+Padding; i++ {
		slot := Slot{Blank: true}
		if i >= 0 && i < len(w.slots) {
			slot = w.slots[i]
		}
		items = append(items, Item{
			Slot:     slot,
			Index:    i,
			Emphasis: w.EmphasisAt(i),
			Centered: i == center,
		})
	}
	if w.rtl {
		for l, r := 0, len(items)-1; l < r; l, r = l+1, r-1 {
			items[l], items[r] = items[r], items[l]
		}
	}
	return items
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
