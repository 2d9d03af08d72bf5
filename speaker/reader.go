// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"errors"
	"io"
	"sync"
)

var errNegativeOffset = errors.New("speaker: negative seek offset")

// pcmReader serves a shared PCM slice to one player. When looping, reads
// wrap to the start instead of returning io.EOF. Offsets past the end are
// allowed and read as the end.
type pcmReader struct {
	mu        sync.Mutex
	data      []byte
	pos       int64
	loop      bool
	frameSize int64
}

func newPCMReader(frameSize int) *pcmReader {
	return &pcmReader{frameSize: int64(frameSize)}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := int64(len(r.data))
	if size == 0 {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) {
		if r.pos >= size {
			if !r.loop {
				break
			}
			r.pos = 0
		}
		c := copy(p[n:], r.data[r.pos:])
		r.pos += int64(c)
		n += c
	}

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (r *pcmReader) Seek(offset int64, whence int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		abs = int64(len(r.data)) + offset
	default:
		return 0, errors.New("speaker: invalid whence")
	}
	if abs < 0 {
		return 0, errNegativeOffset
	}

	r.pos = abs - abs%r.frameSize
	return r.pos, nil
}

func (r *pcmReader) setData(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = data
}

func (r *pcmReader) setLoop(loop bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loop = loop
}

func (r *pcmReader) looping() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loop
}

func (r *pcmReader) offset() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pos
}

func (r *pcmReader) size() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.data))
}
