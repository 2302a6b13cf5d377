package views

// Paginator keeps the cursor of a scrolling list inside a window of rows
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a paginator showing pageSize rows at a time
func NewPaginator(pageSize int) *Paginator {
	p := &Paginator{}
	p.SetPageSize(pageSize)
	return p
}

// SetPageSize changes the window height, e.g. after a resize
func (p *Paginator) SetPageSize(pageSize int) {
	if pageSize <= 0 {
		pageSize = 10
	}
	p.pageSize = pageSize
	p.scroll()
}

// SetTotal sets the number of rows and clamps the cursor
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	p.SetCursor(p.cursor)
}

// Cursor returns the absolute cursor position
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, clamped to the rows
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(0, min(pos, p.totalItems-1))
	p.scroll()
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor > 0 {
		p.SetCursor(p.cursor - 1)
		return true
	}
	return false
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor < p.totalItems-1 {
		p.SetCursor(p.cursor + 1)
		return true
	}
	return false
}

// VisibleRange returns the start and end indices of the rows to draw
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.totalItems)
}

// scroll moves the window by the least amount that shows the cursor
func (p *Paginator) scroll() {
	switch {
	case p.cursor < p.pageOffset:
		p.pageOffset = p.cursor
	case p.cursor >= p.pageOffset+p.pageSize:
		p.pageOffset = p.cursor - p.pageSize + 1
	}
	p.pageOffset = max(0, min(p.pageOffset, p.totalItems-p.pageSize))
}
