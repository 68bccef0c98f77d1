package subtitle

// DefaultGapThreshold is the largest gap, in seconds, closed by NormalizeTiming.
const DefaultGapThreshold = 0.1

// NormalizeTiming extends each cue to the start of the next one when the gap
// between them is below threshold. It runs one forward pass in place and
// returns how many cues were adjusted. A cue never ends before it starts,
// even when the next cue starts earlier.
func NormalizeTiming(cues []Cue, threshold float64) int {
	adjusted := 0
	for i := 0; i+1 < len(cues); i++ {
		end := max(cues[i].Start, cues[i+1].Start)
		if cues[i+1].Start-cues[i].End < threshold && cues[i].End != end {
			cues[i].End = end
			adjusted++
		}
	}
	return adjusted
}
