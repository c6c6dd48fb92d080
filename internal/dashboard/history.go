package dashboard

// DefaultHistorySize is the number of samples retained per metric —
// one minute of data at the one-second cadence.
const DefaultHistorySize = 60

// History retains recent CPU and memory percentages in ring buffers
// for sparkline rendering. The sampling loop is single-threaded, so no
// locking is needed.
type History struct {
	cpu *ringBuffer
	mem *ringBuffer
}

// NewHistory creates a history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		cpu: newRingBuffer(size),
		mem: newRingBuffer(size),
	}
}

// Push records the CPU and memory percentages from one cycle. Memory
// is only recorded when the probe reported a valid result.
func (h *History) Push(st Stats) {
	h.cpu.push(st.CPUPercent)
	if st.Memory.Valid {
		h.mem.push(st.MemPercent())
	}
}

// CPU returns the last count CPU percentages, oldest first.
func (h *History) CPU(count int) []float64 {
	return h.cpu.getLast(count)
}

// Mem returns the last count memory percentages, oldest first.
func (h *History) Mem(count int) []float64 {
	return h.mem.getLast(count)
}

// Count returns the number of CPU samples recorded so far.
func (h *History) Count() int {
	return h.cpu.count
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value
	// is at head-1 and we want 'count' values ending there.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}

	return result
}
