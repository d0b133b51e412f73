package dice

// Between returns a uniform value in [lo, hi]. It returns lo when hi < lo.
func Between(r Roller, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Weighted picks an index with probability weights[i]/sum(weights).
// Non-positive weights are never picked. It returns -1 if no weight is positive.
func Weighted(r Roller, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	pick := r.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if pick < w {
			return i
		}
		pick -= w
	}

	// unreachable: pick < total
	return len(weights) - 1
}
