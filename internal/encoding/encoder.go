// Package encoding provides a buffer-pooled JSON codec for the hot read
// paths. Series payloads are a few kilobytes and identical between requests;
// pooling the scratch buffers keeps repeated marshals allocation-light.
package encoding

import (
	"bytes"
	"encoding/json"
	"sync"
)

// bufferPool reuses marshal scratch buffers across requests.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// Marshal encodes v to JSON using a pooled buffer. The returned slice is a
// copy and safe to retain.
func Marshal(v interface{}) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	enc := json.NewEncoder(buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	// Encode appends a newline; strip it so callers get plain JSON.
	if len(data) > 0 && data[len(data)-1] == '\n' {
		data = data[:len(data)-1]
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Unmarshal decodes JSON data into v.
func Unmarshal(data []byte, v interface{}) error {
	return json.NewDecoder(bytes.NewReader(data)).Decode(v)
}
