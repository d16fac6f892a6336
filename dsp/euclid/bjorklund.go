package euclid

// Bjorklund returns a sequence of length steps with exactly pulses onsets,
// distributed as evenly as possible.
//
// Preconditions: steps >= 1 and 0 <= pulses <= steps. Callers clamp their
// parameters before calling; out-of-range input is not checked.
func Bjorklund(steps, pulses int) []bool {
	seq := make([]bool, 0, steps)
	if pulses == 0 {
		return append(seq, make([]bool, steps)...)
	}

	counts := make([]int, 0, 8)
	remainders := make([]int, 0, 8)

	divisor := steps - pulses
	remainders = append(remainders, pulses)
	level := 0
	for {
		counts = append(counts, divisor/remainders[level])
		remainders = append(remainders, divisor%remainders[level])
		divisor = remainders[level]
		level++
		if remainders[level] <= 1 {
			break
		}
	}
	counts = append(counts, divisor)

	var build func(slot int)
	build = func(slot int) {
		switch slot {
		case -1:
			seq = append(seq, false)
		case -2:
			seq = append(seq, true)
		default:
			for i := 0; i < counts[slot]; i++ {
				build(slot - 1)
			}
			if remainders[slot] != 0 {
				build(slot - 2)
			}
		}
	}
	build(level)

	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	if !seq[0] {
		lead := 0
		for lead < len(seq) && !seq[lead] {
			lead++
		}
		rotateLeft(seq, lead)
	}

	return seq
}

func rotateLeft(seq []bool, n int) {
	if n <= 0 || n >= len(seq) {
		return
	}
	reverse(seq[:n])
	reverse(seq[n:])
	reverse(seq)
}

func reverse(seq []bool) {
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
}
