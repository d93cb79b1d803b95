// Package viewport holds the scroll math shared by every widget.
//
// All offsets are derived through ClampOffset. Widgets never add to or
// subtract from an offset directly.
package viewport

// ClampOffset returns the scroll offset that keeps focus inside a window of
// span cells over content of the given length, starting from offset.
func ClampOffset(offset, focus, span, length int) int {
	span = max(1, span)
	next := offset
	if focus < offset {
		next = focus
	} else if focus >= offset+span {
		next = focus - span + 1
	}
	return clamp(next, 0, max(0, length-span))
}

// Axis is one scroll dimension: a window of Span cells at Offset over
// Length cells of content.
type Axis struct {
	Offset int
	Span   int
	Length int
}

// MaxOffset is the largest offset that still fills the window.
func (a Axis) MaxOffset() int {
	return max(0, a.Length-max(1, a.Span))
}

// Fits reports whether the whole content is visible at once.
func (a Axis) Fits() bool {
	return a.Length <= max(1, a.Span)
}

// Focus moves the window just enough to show focus.
func (a Axis) Focus(focus int) Axis {
	a.Offset = ClampOffset(a.Offset, focus, a.Span, a.Length)
	return a
}

// Scroll pans the window by delta cells, stopping at either edge.
func (a Axis) Scroll(delta int) Axis {
	switch {
	case delta < 0:
		return a.Focus(a.Offset + delta)
	case delta > 0:
		return a.Focus(a.Offset + max(1, a.Span) - 1 + delta)
	}
	return a
}

// JumpTo puts index at the top of the window when the content allows it.
func (a Axis) JumpTo(index int) Axis {
	a.Offset = ClampOffset(index, index, a.Span, a.Length)
	return a
}

// Resize updates the window and content size and re-clamps the offset.
func (a Axis) Resize(span, length int) Axis {
	a.Span = max(1, span)
	a.Length = max(0, length)
	a.Offset = ClampOffset(a.Offset, a.Offset, a.Span, a.Length)
	return a
}

// Percent reports how far the window has scrolled, 0 when the content fits.
func (a Axis) Percent() int {
	if a.Fits() {
		return 0
	}
	return a.Offset * 100 / max(1, a.Length-max(1, a.Span))
}

// End is the exclusive index of the last visible cell.
func (a Axis) End() int {
	return min(a.Length, a.Offset+max(1, a.Span))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
