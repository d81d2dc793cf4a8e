package diff

// Window prunes an edit script down to its change runs plus up to context
// unchanged lines on either side of each run. The result is a subsequence of
// lines in the original order; an input without changes yields no output.
//
// Windows of nearby runs merge: each record is included at most once, even
// when the trailing context of one run overlaps the leading context of the
// next by more than one line.
func Window(lines []LineRecord, context int) []LineRecord {
	if len(lines) == 0 {
		return nil
	}

	include := make([]bool, len(lines))

	i := 0
	for i < len(lines) {
		if lines[i].Tag == Context {
			i++
			continue
		}

		// Change run [i, end).
		end := i + 1
		for end < len(lines) && lines[end].Tag != Context {
			end++
		}

		start := i - context
		if start < 0 {
			start = 0
		}
		tail := end + context
		if tail > len(lines) {
			tail = len(lines)
		}

		for j := start; j < tail; j++ {
			include[j] = true
		}

		i = end
	}

	var result []LineRecord
	for j, ok := range include {
		if ok {
			result = append(result, lines[j])
		}
	}
	return result
}
