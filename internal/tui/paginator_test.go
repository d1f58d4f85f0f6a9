package tui

import "testing"

func TestPaginatorCursorFollowsPages(t *testing.T) {
	p := newPaginator(5)
	p.SetTotal(12)

	if got := p.TotalPages(); got != 3 {
		t.Errorf("TotalPages() = %d, want 3", got)
	}

	// Walking past the page boundary flips the page
	for i := 0; i < 5; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 5 {
		t.Errorf("cursor = %d, want 5", p.Cursor())
	}
	if p.CurrentPage() != 2 {
		t.Errorf("page = %d, want 2", p.CurrentPage())
	}

	start, end := p.VisibleRange()
	if start != 5 || end != 10 {
		t.Errorf("VisibleRange() = %d..%d, want 5..10", start, end)
	}
}

func TestPaginatorPageJumps(t *testing.T) {
	p := newPaginator(5)
	p.SetTotal(12)

	p.NextPage()
	p.NextPage()
	if p.CurrentPage() != 3 {
		t.Errorf("page = %d, want 3", p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 10 || end != 12 {
		t.Errorf("VisibleRange() = %d..%d, want 10..12", start, end)
	}

	// Last page cannot be crossed
	p.NextPage()
	if p.CurrentPage() != 3 {
		t.Errorf("page after overshoot = %d, want 3", p.CurrentPage())
	}

	p.PrevPage()
	if p.CurrentPage() != 2 {
		t.Errorf("page = %d, want 2", p.CurrentPage())
	}
	if p.Cursor() != 5 {
		t.Errorf("cursor after PrevPage = %d, want 5", p.Cursor())
	}
}

func TestPaginatorClampsOnShrink(t *testing.T) {
	p := newPaginator(5)
	p.SetTotal(12)
	for i := 0; i < 11; i++ {
		p.CursorDown()
	}

	// The list shrinks under the cursor, say after a sweep
	p.SetTotal(3)
	if p.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", p.Cursor())
	}
	if p.CurrentPage() != 1 {
		t.Errorf("page = %d, want 1", p.CurrentPage())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 {
		t.Errorf("cursor on empty list = %d, want 0", p.Cursor())
	}
	if p.TotalPages() != 1 {
		t.Errorf("TotalPages() on empty list = %d, want 1", p.TotalPages())
	}
}
