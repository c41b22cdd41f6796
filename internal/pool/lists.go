// Package pool hands out reusable scratch slices for per-frame queries.
package pool

// Lists is a free list of slices. Get returns an empty slice that may carry capacity
// from an earlier query; Put hands it back. A slice must not be used after Put.
//
// Not safe for concurrent use; the simulation runs on a single goroutine.
type Lists[T any] struct {
	free [][]T
	// Outstanding counts slices handed out and not yet returned.
	Outstanding int
}

func (p *Lists[T]) Get() []T {
	p.Outstanding++
	n := len(p.free)
	if n == 0 {
		return nil
	}
	s := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	return s
}

func (p *Lists[T]) Put(s []T) {
	p.Outstanding--
	if cap(s) == 0 {
		return
	}
	clear(s) // drop references held by the backing array
	p.free = append(p.free, s[:0])
}

// Free returns the number of slices waiting for reuse.
func (p *Lists[T]) Free() int {
	return len(p.free)
}
