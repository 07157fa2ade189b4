package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a top-20 table response without growing
const initialBufferSize = 16 << 10

// bufferPool reuses encode buffers across JSON responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
