package state

// Viewport tracks the first visible row of a scrolling list.
type Viewport struct {
	Offset int
}

// Ensure adjusts the offset so cursor stays within the maxVisible rows shown.
func (v *Viewport) Ensure(cursor, total, maxVisible int) {
	if total == 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	if upper := v.Offset + maxVisible - 1; cursor > upper {
		v.Offset = cursor - maxVisible + 1
	}
}

// Window returns the half-open index range [start, end) to render.
func (v *Viewport) Window(cursor, total, maxVisible int) (int, int) {
	v.Ensure(cursor, total, maxVisible)
	if maxVisible <= 0 {
		return 0, total
	}
	end := v.Offset + maxVisible
	if end > total {
		end = total
	}
	return v.Offset, end
}
