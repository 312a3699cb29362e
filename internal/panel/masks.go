package panel

import "lifepanel/pkg/bitgrid"

// RippleFrames is the length of the concentric reveal sequence.
const RippleFrames = 15

// RippleMasks generates the reveal masks used by the boot animation. Frame k
// covers every cell within Chebyshev distance k+1 of the top-left corner, so
// coverage grows monotonically and the last frame is all-ones. The table is
// computed once at startup instead of being hand-typed.
func RippleMasks() [RippleFrames]bitgrid.Grid {
	var masks [RippleFrames]bitgrid.Grid
	for k := 0; k < RippleFrames; k++ {
		for r := 0; r < bitgrid.Size; r++ {
			for c := 0; c < bitgrid.Size; c++ {
				d := r
				if c > d {
					d = c
				}
				if d <= k+1 {
					masks[k].Set(r, c, true)
				}
			}
		}
	}
	return masks
}
