package state

// sharesAnchor reports whether a and b have an anchor handle in common.
func sharesAnchor(a, b *Curve) bool {
	return a.Start == b.Start || a.Start == b.End ||
		a.End == b.Start || a.End == b.End
}

// Connected returns every curve of all that is reachable from seeds through
// shared anchors, seeds included. The result follows the order of all.
// Seeds not present in all are ignored.
func Connected(all, seeds []*Curve) []*Curve {
	marked := make(map[*Curve]bool, len(all))
	inAll := make(map[*Curve]bool, len(all))
	for _, c := range all {
		inAll[c] = true
	}

	var work []*Curve
	for _, s := range seeds {
		if inAll[s] && !marked[s] {
			marked[s] = true
			work = append(work, s)
		}
	}

	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		for _, c := range all {
			if !marked[c] && sharesAnchor(cur, c) {
				marked[c] = true
				work = append(work, c)
			}
		}
	}

	out := make([]*Curve, 0, len(marked))
	for _, c := range all {
		if marked[c] {
			out = append(out, c)
		}
	}
	return out
}
