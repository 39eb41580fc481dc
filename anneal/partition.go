package anneal

// partitionRange splits [0, n) across size ranks: rank 0 owns
// [0, offset), rank r >= 1 owns [offset+(r-1)*width, offset+r*width),
// where width = n/size and offset = n - width*(size-1). This gives any
// remainder to rank 0 and covers every vertex exactly once.
func partitionRange(n, size, rank int) (lo, hi int) {
	width := n / size
	offset := n - width*(size-1)
	if rank == 0 {
		return 0, offset
	}
	return offset + (rank-1)*width, offset + rank*width
}
