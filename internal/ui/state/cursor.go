package state

// Cursor is the selected row of a list. The zero value selects nothing.
type Cursor struct {
	index int
	set   bool
}

// CursorAt returns a cursor selecting index i.
func CursorAt(i int) Cursor {
	return Cursor{index: i, set: true}
}

// Index returns the selected row and whether anything is selected.
func (c Cursor) Index() (int, bool) {
	return c.index, c.set
}

// Int returns the selected row, or -1 when nothing is selected.
func (c Cursor) Int() int {
	if !c.set {
		return -1
	}
	return c.index
}

// Valid reports whether the cursor selects a row of a list of length n.
func (c Cursor) Valid(n int) bool {
	return c.set && c.index >= 0 && c.index < n
}

// Next moves the selection down one row without wrapping. With nothing
// selected the move starts from row 0, so the second row is selected (or the
// only row of a one-row list).
func (c *Cursor) Next(n int) bool {
	return c.move(n, 1)
}

// Prev moves the selection up one row without wrapping. With nothing
// selected the move starts from row 0 and stays there.
func (c *Cursor) Prev(n int) bool {
	return c.move(n, -1)
}

func (c *Cursor) move(n, delta int) bool {
	if n <= 0 {
		return c.reset()
	}
	old := *c
	from := 0
	if c.set {
		from = c.index
	}
	*c = CursorAt(from + delta)
	c.Clamp(n)
	return *c != old
}

// Clamp pulls the selection back into a list of length n. An empty list
// clears the selection.
func (c *Cursor) Clamp(n int) {
	if !c.set {
		return
	}
	if n <= 0 {
		c.reset()
		return
	}
	if c.index >= n {
		c.index = n - 1
	}
	if c.index < 0 {
		c.index = 0
	}
}

func (c *Cursor) reset() bool {
	changed := c.set
	*c = Cursor{}
	return changed
}
