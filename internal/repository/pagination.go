package repository

// pageOffset converts zero-based paging into a row offset. Offset is
// limit*page, so with a fixed limit consecutive pages cover adjacent,
// non-overlapping row ranges.
func pageOffset(limit, page int) int {
	return limit * page
}
