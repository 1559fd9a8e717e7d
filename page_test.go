package entt

import "testing"

func TestPagedArrayAddressStability(t *testing.T) {
	p := newPagedArray[int](4, 0)

	ptr0 := p.At(0)
	*ptr0 = 42

	// Force allocation of further pages; ptr0 must keep pointing at
	// the same backing slot since pages are never moved once
	// allocated, only appended.
	p.Reserve(20)

	if got := *ptr0; got != 42 {
		t.Fatalf("value at stable pointer changed: got %d, want 42", got)
	}
	if got := p.Peek(0); got != 42 {
		t.Fatalf("Peek(0) = %d, want 42", got)
	}
}

func TestPagedArrayPeekNeverAllocates(t *testing.T) {
	p := newPagedArray[int](4, -1)

	if got := p.Peek(100); got != -1 {
		t.Fatalf("Peek on unallocated page = %d, want fill value -1", got)
	}
	if p.PageCount() != 0 {
		t.Fatalf("Peek allocated a page: PageCount() = %d, want 0", p.PageCount())
	}
}

func TestPagedArrayAppendGrowsAcrossPages(t *testing.T) {
	p := newPagedArray[int](4, 0)

	for i := 0; i < 10; i++ {
		ptr, idx := p.Append()
		*ptr = i * i
		if idx != i {
			t.Fatalf("Append index = %d, want %d", idx, i)
		}
	}

	if p.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", p.Len())
	}
	if p.PageCount() != 3 {
		t.Fatalf("PageCount() = %d, want 3 for 10 elements at page size 4", p.PageCount())
	}
	for i := 0; i < 10; i++ {
		if got := p.Peek(i); got != i*i {
			t.Fatalf("Peek(%d) = %d, want %d", i, got, i*i)
		}
	}
}

func TestPagedArrayShrinkToFit(t *testing.T) {
	p := newPagedArray[int](4, 0)
	p.Reserve(16)
	p.SetLen(5)

	p.ShrinkToFit()
	if p.PageCount() != 2 {
		t.Fatalf("PageCount() after ShrinkToFit = %d, want 2", p.PageCount())
	}

	p.SetLen(0)
	p.ShrinkToFit()
	if p.PageCount() != 0 {
		t.Fatalf("PageCount() after ShrinkToFit at len 0 = %d, want 0", p.PageCount())
	}
}

func TestPagedArraySetLenGrowsAndAllocates(t *testing.T) {
	p := newPagedArray[int](4, 7)
	p.SetLen(6)

	if p.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", p.Len())
	}
	if got := p.Peek(5); got != 7 {
		t.Fatalf("Peek(5) = %d, want fill value 7", got)
	}
}
