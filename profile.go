package pulley

import (
	"sync"
)

// Profile returns the closed outline of a pulley with n teeth as 7n arcs.
// Tooth t occupies arcs [7t, 7t+7). The last arc ends where the first begins.
// No arcs are returned if any tooth fails to build.
func Profile(s Spec, n int) ([]Arc, error) {
	if _, err := s.Diameters(n); err != nil {
		return nil, err
	}
	arcs := make([]Arc, 0, ArcsPerTooth*n)
	for t := 0; t < n; t++ {
		ta, err := ToothArcs(s, n, t)
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, ta...)
	}
	return arcs, nil
}

// ProfileConcurrent is like Profile but builds teeth in parallel.
// The result is identical to that of Profile.
func ProfileConcurrent(s Spec, n int) ([]Arc, error) {
	if _, err := s.Diameters(n); err != nil {
		return nil, err
	}
	arcs := make([]Arc, ArcsPerTooth*n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for t := 0; t < n; t++ {
		go func(t int) {
			defer wg.Done()
			ta, err := ToothArcs(s, n, t)
			if err != nil {
				errs[t] = err
				return
			}
			copy(arcs[ArcsPerTooth*t:], ta)
		}(t)
	}
	wg.Wait()
	// Report the lowest failing tooth, as Profile would.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return arcs, nil
}
