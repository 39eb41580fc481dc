package transport

// Single is a trivial rank-0/size-1 Communicator: every collective is an
// identity operation. Used by tests and single-process runs that don't
// need Local's goroutine-per-rank simulation.
type Single struct{}

func (Single) Rank() int { return 0 }
func (Single) Size() int { return 1 }

func (Single) BroadcastInts(root int, v []int32) {}

func (Single) AllReduceSum(v float64) float64 { return v }
