package tui

import (
	"math"

	"github.com/javiermolinar/timewheel/internal/picker"
	"github.com/javiermolinar/timewheel/internal/tui/view"
	"github.com/javiermolinar/timewheel/internal/wheel"
)

// animationFrames is the number of frames a one-slot scroll takes.
const animationFrames = 3

// wheelControl drives one wheel: keyboard targets, animation frames, and
// the sequence number that identifies the latest scroll.
type wheelControl struct {
	field     picker.Field
	wheel     wheel.Wheel
	target    float64 // Target position in slots while animating
	animating bool
	pending   bool // Scrolled since the last settle
	seq       int
}

func newWheelControl(field picker.Field, values []int, current *int, rtl bool, width int) wheelControl {
	w := wheel.New(values, current, rtl)
	w.SetWidth(width)
	return wheelControl{
		field:  field,
		wheel:  w,
		target: w.Position(),
	}
}

// layout applies a measured wheel width. The centered slot is kept.
func (c *wheelControl) layout(width int) {
	c.wheel.SetWidth(width)
}

// base is the slot a relative scroll starts from.
func (c *wheelControl) base() float64 {
	if c.animating {
		return c.target
	}
	return math.Round(c.wheel.Position())
}

// aim sets a new animation target and starts a new scroll sequence. It
// reports whether the wheel can animate; before layout the wheel jumps.
func (c *wheelControl) aim(pos float64) bool {
	c.target = math.Max(0, math.Min(pos, c.wheel.MaxPosition()))
	c.seq++
	c.pending = true
	if c.wheel.ItemWidth() <= 0 {
		c.wheel.SetPosition(c.target)
		c.animating = false
		return false
	}
	c.animating = true
	return true
}

// frame advances the animation by one frame and reports whether the
// target was reached.
func (c *wheelControl) frame() bool {
	if !c.animating {
		return true
	}
	itemWidth := c.wheel.ItemWidth()
	diff := (c.target - c.wheel.Position()) * itemWidth
	step := itemWidth / animationFrames
	if math.Abs(diff) <= step || step <= 0 {
		c.wheel.ScrollTo(c.target * itemWidth)
		c.animating = false
		return true
	}
	c.wheel.ScrollBy(math.Copysign(step, diff))
	return false
}

// nudge scrolls freely by a pixel delta and starts a new scroll sequence.
func (c *wheelControl) nudge(pixels float64) {
	c.animating = false
	c.wheel.ScrollBy(pixels)
	c.target = c.wheel.Position()
	c.seq++
	c.pending = true
}

// flush jumps an animating wheel to its target and drops the ticks and
// settle timers of the current scroll sequence.
func (c *wheelControl) flush() {
	if c.animating {
		c.wheel.SetPosition(c.target)
		c.animating = false
	}
	c.seq++
}

// settle snaps the wheel and returns the centered value.
func (c *wheelControl) settle() (int, bool) {
	c.animating = false
	c.pending = false
	v, ok := c.wheel.Settle()
	c.target = c.wheel.Position()
	return v, ok
}

// items converts the visible window into view items.
func (c *wheelControl) items() []view.WheelItem {
	if c.wheel.Empty() {
		return nil
	}
	window := c.wheel.Window()
	items := make([]view.WheelItem, 0, len(window))
	for _, it := range window {
		items = append(items, view.WheelItem{
			Label:    it.Slot.Label(),
			Opacity:  it.Emphasis.Opacity,
			Scale:    it.Emphasis.Scale,
			Centered: it.Centered,
		})
	}
	return items
}
