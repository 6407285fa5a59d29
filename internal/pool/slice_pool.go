package pool

import "sync"

// uint32SlicePool backs cmd/fonttool's word decoding, which repeatedly
// needs a scratch []uint32 the size of one file's word count and would
// otherwise allocate one per invocation.
var uint32SlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetUint32Slice retrieves and resizes a uint32 slice from the pool.
//
// The returned slice has length equal to size. If the pooled slice has
// insufficient capacity, a new slice is allocated. The caller must call the
// returned cleanup function (typically via defer) to return the slice to the
// pool.
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint32SlicePool.Put(ptr) }
}
