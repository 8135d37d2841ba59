package generator

import (
	"bytes"
	"sync"
)

// Tiered buffer sizes by the number of functions in a file
const (
	smallBufferSize  = 4 * 1024  // 4KB for <10 functions
	mediumBufferSize = 16 * 1024 // 16KB for 10-50 functions
	largeBufferSize  = 64 * 1024 // 64KB for 50+ functions
)

var smallBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, smallBufferSize))
	},
}

var mediumBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, mediumBufferSize))
	},
}

var largeBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, largeBufferSize))
	},
}

func poolFor(opCount int) *sync.Pool {
	switch {
	case opCount < 10:
		return &smallBufferPool
	case opCount < 50:
		return &mediumBufferPool
	default:
		return &largeBufferPool
	}
}

// getTemplateBuffer returns an empty buffer sized for opCount functions.
func getTemplateBuffer(opCount int) *bytes.Buffer {
	buf := poolFor(opCount).Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putTemplateBuffer returns a buffer to the pool it came from.
func putTemplateBuffer(buf *bytes.Buffer, opCount int) {
	if buf == nil {
		return
	}
	// Don't pool oversized buffers
	if buf.Cap() > 1<<20 {
		return
	}
	poolFor(opCount).Put(buf)
}
