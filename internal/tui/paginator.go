package tui

// paginator provides cursor and page logic for the list views
type paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

func newPaginator(size int) *paginator {
	if size <= 0 {
		size = pageSize
	}
	return &paginator{pageSize: size}
}

// SetTotal sets the total number of items, clamping the cursor
func (p *paginator) SetTotal(total int) {
	p.totalItems = total
	if p.cursor >= total && total > 0 {
		p.cursor = total - 1
	}
	if p.cursor < 0 || total == 0 {
		p.cursor = 0
	}
	p.ensureCursorInPage()
}

// Cursor returns the absolute cursor position
func (p *paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the cursor up by one
func (p *paginator) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
		p.ensureCursorInPage()
	}
}

// CursorDown moves the cursor down by one
func (p *paginator) CursorDown() {
	if p.cursor < p.totalItems-1 {
		p.cursor++
		p.ensureCursorInPage()
	}
}

// VisibleRange returns the start and end indices of the current page
func (p *paginator) VisibleRange() (start, end int) {
	start = p.pageOffset
	end = p.pageOffset + p.pageSize
	if end > p.totalItems {
		end = p.totalItems
	}
	return start, end
}

// TotalPages returns the page count, at least one
func (p *paginator) TotalPages() int {
	if p.totalItems == 0 {
		return 1
	}
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the current page number, 1-based
func (p *paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// NextPage moves to the next page
func (p *paginator) NextPage() {
	if p.pageOffset+p.pageSize < p.totalItems {
		p.pageOffset += p.pageSize
		p.cursor = p.pageOffset
	}
}

// PrevPage moves to the previous page
func (p *paginator) PrevPage() {
	if p.pageOffset > 0 {
		p.pageOffset -= p.pageSize
		if p.pageOffset < 0 {
			p.pageOffset = 0
		}
		p.cursor = p.pageOffset
	}
}

// Reset returns to the first row of the first page
func (p *paginator) Reset() {
	p.cursor = 0
	p.pageOffset = 0
}

// ensureCursorInPage moves the page so the cursor stays visible
func (p *paginator) ensureCursorInPage() {
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}
