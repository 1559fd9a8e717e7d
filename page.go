package entt

// defaultPageSize is used when a component type's traits do not
// specify a page size.
const defaultPageSize = 1024

// defaultSparsePageSize is used for the sparse index map; it is
// larger than the packed default because sparse pages are cheap
// (one uint32 per slot) and exist mainly to bound how much memory a
// handful of high-index entities force-allocates.
const defaultSparsePageSize = 4096

// page is a single, fixed-length slice. Once allocated its backing
// array is never touched by pagedArray again, so a pointer into a
// page survives any later page being appended.
type page[T any] []T

// pagedArray is a logically contiguous, randomly addressable sequence
// backed by independently allocated pages. Appending a new page may
// reallocate the outer slice of page handles, but never the pages
// themselves, which is what gives every element a page-stable
// address for the lifetime of the pagedArray (until that specific
// page is released by ShrinkToFit or Reset).
type pagedArray[T any] struct {
	pages    []page[T]
	pageSize int
	length   int
	fill     T
	alloc    Allocator[T]
}

// newPagedArray creates an empty pagedArray with the given page size.
// fill is the value new, lazily-allocated pages are pre-filled with;
// pass the zero value of T unless a sentinel (e.g. an "absent" marker)
// is required.
func newPagedArray[T any](pageSize int, fill T) *pagedArray[T] {
	return newPagedArrayWithAlloc(pageSize, fill, nil)
}

// newPagedArrayWithAlloc is newPagedArray, but pages are obtained from
// alloc instead of a bare make -- the hook Storage[T] uses to honor a
// caller-supplied Allocator[T] (spec.md §5).
func newPagedArrayWithAlloc[T any](pageSize int, fill T, alloc Allocator[T]) *pagedArray[T] {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &pagedArray[T]{pageSize: pageSize, fill: fill, alloc: alloc}
}

// Len is the logical length: the number of elements considered live,
// not the allocated capacity.
func (p *pagedArray[T]) Len() int { return p.length }

// PageSize is the fixed element count of every page.
func (p *pagedArray[T]) PageSize() int { return p.pageSize }

// PageCount returns how many pages are currently allocated.
func (p *pagedArray[T]) PageCount() int { return len(p.pages) }

// Cap is the total element capacity across all allocated pages.
func (p *pagedArray[T]) Cap() int { return len(p.pages) * p.pageSize }

func (p *pagedArray[T]) pageOf(i int) (pageIdx, slotIdx int) {
	return i / p.pageSize, i % p.pageSize
}

func (p *pagedArray[T]) ensurePage(pageIdx int) {
	for pageIdx >= len(p.pages) {
		var pg page[T]
		if p.alloc != nil {
			pg = page[T](p.alloc.NewSlice(p.pageSize))
		} else {
			pg = make(page[T], p.pageSize)
		}
		for i := range pg {
			pg[i] = p.fill
		}
		p.pages = append(p.pages, pg)
	}
}

// hasPage reports whether the page containing logical index i has
// been allocated, without allocating it.
func (p *pagedArray[T]) hasPage(i int) bool {
	pageIdx, _ := p.pageOf(i)
	return pageIdx < len(p.pages)
}

// At returns a stable pointer to the element at i, lazily allocating
// whichever page it lives on. It does not move the logical length.
func (p *pagedArray[T]) At(i int) *T {
	pageIdx, slotIdx := p.pageOf(i)
	p.ensurePage(pageIdx)
	return &p.pages[pageIdx][slotIdx]
}

// Peek returns the element at i, or the fill value if the backing
// page has never been allocated. It never allocates.
func (p *pagedArray[T]) Peek(i int) T {
	pageIdx, slotIdx := p.pageOf(i)
	if pageIdx >= len(p.pages) {
		return p.fill
	}
	return p.pages[pageIdx][slotIdx]
}

// Reserve ensures pages exist to cover n logical elements, without
// changing the logical length.
func (p *pagedArray[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	pageIdx, _ := p.pageOf(n - 1)
	p.ensurePage(pageIdx)
}

// Append grows the logical length by one, allocating a page if
// needed, and returns a pointer to the new slot plus its index.
func (p *pagedArray[T]) Append() (*T, int) {
	idx := p.length
	ptr := p.At(idx)
	p.length++
	return ptr, idx
}

// SetLen adjusts the logical length directly. Used when the caller
// has already written (or doesn't need to read) the elements between
// the old and new length.
func (p *pagedArray[T]) SetLen(n int) {
	if n > p.length {
		p.Reserve(n)
	}
	p.length = n
}

// ShrinkToFit releases every page wholly beyond the current logical
// length, including all pages when the length is zero.
func (p *pagedArray[T]) ShrinkToFit() {
	if p.length == 0 {
		p.pages = nil
		return
	}
	needed, _ := p.pageOf(p.length - 1)
	needed++
	if needed < len(p.pages) {
		p.pages = p.pages[:needed]
	}
}

// Reset drops the logical length to zero and releases all pages.
func (p *pagedArray[T]) Reset() {
	p.pages = nil
	p.length = 0
}
