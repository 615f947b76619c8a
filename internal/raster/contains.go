package raster

// Contains reports whether (x, y) lies inside the polygon under the even-odd
// rule, by hit-counting a horizontal ray cast. This is the classical AWT
// polygon-containment algorithm with the slope comparison rewritten as a
// cross multiplication so the test stays in exact integer arithmetic.
//
// Each edge crossing the query's scanline strictly inside its half-open Y
// interval counts a hit when the query point is left of the edge at that Y.
// Horizontal edges never count. Points exactly on an edge get whatever the
// half-open interval and the strict comparisons produce; there is no separate
// tie-break rule.
func Contains(xs, ys []int, n, x, y int) bool {
	if n < 3 {
		return false
	}
	hits := 0
	lastX, lastY := xs[n-1], ys[n-1]
	for i := 0; i < n; i++ {
		curX, curY := xs[i], ys[i]
		if curY == lastY {
			lastX, lastY = curX, curY
			continue
		}

		// Reject edges entirely left of or at the query point, and record
		// the edge's left X bound for the trivial-accept test below.
		var leftX int
		if curX < lastX {
			if x >= lastX {
				lastX, lastY = curX, curY
				continue
			}
			leftX = curX
		} else {
			if x >= curX {
				lastX, lastY = curX, curY
				continue
			}
			leftX = lastX
		}

		// The ray crosses only within the half-open Y interval; the lower
		// endpoint is included, the upper excluded, so a vertex shared by
		// two edges is counted exactly once.
		var t1, t2 int
		if curY < lastY {
			if y < curY || y >= lastY {
				lastX, lastY = curX, curY
				continue
			}
			t1, t2 = x-curX, y-curY
		} else {
			if y < lastY || y >= curY {
				lastX, lastY = curX, curY
				continue
			}
			t1, t2 = x-lastX, y-lastY
		}

		if x < leftX {
			hits++
		} else {
			// x lies within the edge's X extent: compare against the edge's
			// X at the query Y. The reference test is
			//   t1 < t2 * (lastX-curX) / (lastY-curY)
			// cross-multiplied by (lastY-curY), flipping the comparison when
			// the denominator is negative.
			den := lastY - curY
			num := lastX - curX
			if den > 0 {
				if t1*den < t2*num {
					hits++
				}
			} else {
				if t1*den > t2*num {
					hits++
				}
			}
		}
		lastX, lastY = curX, curY
	}
	return hits&1 != 0
}
