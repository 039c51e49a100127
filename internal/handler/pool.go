package handler

import (
	"bytes"
	"sync"
)

// Typical response bodies fit well under this
const responseBufferSize = 512

// bufferPool recycles the buffers responses are encoded into. Encoding to
// a buffer first lets encoding failures turn into a 500 instead of a
// half-written body.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
