package render

// Range resolves member visibility for a Range widget. Positions are
// 1-based in document order; members with start <= p <= end are visible.
// start=0,end=0 hides every member. Out-of-range or inverted bounds are a
// value error; nothing is clamped silently.
func Range(name string, total, start, end int) ([]bool, error) {
	if start < 0 || end < 0 || start > total || end > total {
		return nil, valueErr(name, -1, 0, "bounds [%d,%d] outside [0,%d]", start, end, total)
	}
	if start > end {
		return nil, valueErr(name, -1, 0, "start %d exceeds end %d", start, end)
	}

	visible := make([]bool, total)
	if start == 0 && end == 0 {
		return visible, nil
	}
	for p := 1; p <= total; p++ {
		visible[p-1] = start <= p && p <= end
	}
	return visible, nil
}
