package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
)

// MaxBufferCells caps a single allocation at 64 Mi samples (256 MiB), so
// a buggy or hostile caller gets an error instead of exhausting memory.
const MaxBufferCells = 1 << 26

var (
	// ErrBufferTooLarge is returned when an allocation exceeds MaxBufferCells.
	ErrBufferTooLarge = errors.New("session: buffer allocation exceeds limit")
	// ErrBufferNotOwned is returned when freeing a buffer this allocator
	// does not track: either a double free or a foreign buffer.
	ErrBufferNotOwned = errors.New("session: buffer not owned by allocator or already freed")
)

// Buffer is a caller-owned, flat, row-major biome grid of Sx*Sz samples.
// Between AllocBiomeBuffer and FreeBuffer the host has exclusive access
// to Data; the allocator keeps no reference to the contents.
type Buffer struct {
	Data []int32
	Sx   int
	Sz   int
}

// At returns the sample at column i, row j.
func (b *Buffer) At(i, j int) cubegen.Biome {
	return cubegen.Biome(b.Data[j*b.Sx+i])
}

// live tracks outstanding allocations by identity so misuse (double free,
// foreign buffer) is detected instead of being undefined behavior.
var live = struct {
	mu   sync.Mutex
	bufs map[*Buffer]struct{}
}{bufs: make(map[*Buffer]struct{})}

// AllocBiomeBuffer allocates a zero-initialized buffer for sx*sz samples
// and transfers ownership to the caller. A zero-sized request is valid
// and yields an empty buffer.
func AllocBiomeBuffer(sx, sz int) (*Buffer, error) {
	if sx < 0 || sz < 0 {
		return nil, fmt.Errorf("session: negative buffer size %dx%d", sx, sz)
	}
	if sx > 0 && sz > MaxBufferCells/sx {
		return nil, ErrBufferTooLarge
	}

	b := &Buffer{Data: make([]int32, sx*sz), Sx: sx, Sz: sz}
	live.mu.Lock()
	live.bufs[b] = struct{}{}
	live.mu.Unlock()
	return b, nil
}

// FreeBuffer releases a buffer obtained from AllocBiomeBuffer. A nil
// buffer is a no-op. Freeing twice, or freeing a buffer from elsewhere,
// returns ErrBufferNotOwned.
func FreeBuffer(b *Buffer) error {
	if b == nil {
		return nil
	}
	live.mu.Lock()
	defer live.mu.Unlock()
	if _, ok := live.bufs[b]; !ok {
		return ErrBufferNotOwned
	}
	delete(live.bufs, b)
	b.Data = nil
	return nil
}
