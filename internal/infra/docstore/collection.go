package docstore

// Data is the on-disk shape of a counter-backed collection:
// {"records": [...], "next_id": N}. NextID only ever moves forward, and it
// advances inside the same Update critical section as the insert it feeds,
// which is what keeps surrogate ids unique and contiguous under
// concurrent writers.
type Data[R any] struct {
	Records []R `json:"records"`
	NextID  int `json:"next_id"`
}

// AllocID returns the next surrogate id and advances the counter.
func (d *Data[R]) AllocID() int {
	id := d.NextID
	if id < 1 {
		id = 1
	}
	d.NextID = id + 1
	return id
}

func NewCollection[R any](path string) *Store[Data[R]] {
	return NewStore(path, func() Data[R] {
		return Data[R]{Records: []R{}, NextID: 1}
	})
}
