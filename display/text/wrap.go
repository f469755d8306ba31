package text

import "strings"

// Wrap splits s into lines no wider than maxWidth columns, breaking only at
// whitespace. A word wider than maxWidth is kept whole on its own line.
//
// The result uses the fewest lines a greedy fill would need, with the break
// points shifted so the lines come out close to equal in width. A maxWidth
// of zero disables wrapping and returns s unchanged as a single line. Input
// without any words yields nil.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{s}
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	widths := make([]int, len(words))
	for i, w := range words {
		widths[i] = Width(w)
	}

	// span returns the width of words[start:end] joined by single spaces.
	span := func(start, end int) int {
		if start >= end {
			return 0
		}
		total := end - start - 1
		for i := start; i < end; i++ {
			total += widths[i]
		}
		return total
	}

	numLines, greedyBreak := greedyLineCount(widths, maxWidth)

	switch numLines {
	case 1:
		return []string{strings.Join(words, " ")}
	case 2:
		split := balancedSplit(len(words), maxWidth, greedyBreak, span)
		return []string{
			strings.Join(words[:split], " "),
			strings.Join(words[split:], " "),
		}
	}

	return distribute(words, widths, maxWidth, numLines, span)
}

// greedyLineCount returns how many lines a first-fit fill produces and the
// index of the word that starts its second line.
func greedyLineCount(widths []int, maxWidth int) (lines, secondStart int) {
	lines = 1
	current := 0
	for i, w := range widths {
		added := w
		if current > 0 {
			added++
		}
		if current > 0 && current+added > maxWidth {
			lines++
			if lines == 2 {
				secondStart = i
			}
			current = w
			continue
		}
		current += added
	}
	return lines, secondStart
}

// balancedSplit picks the break index that minimizes the width difference
// between two lines that both fit. Ties keep the earliest break. When no
// break fits both lines the greedy break is kept, so an overlong word ends
// up alone on its line.
func balancedSplit(n, maxWidth, greedyBreak int, span func(int, int) int) int {
	best := greedyBreak
	bestDiff := -1
	for split := 1; split < n; split++ {
		first := span(0, split)
		second := span(split, n)
		if first > maxWidth || second > maxWidth {
			continue
		}
		diff := first - second
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best = split
			bestDiff = diff
		}
	}
	return best
}

// distribute fills numLines lines aiming for an even width per line.
func distribute(words []string, widths []int, maxWidth, numLines int, span func(int, int) int) []string {
	total := span(0, len(words))
	target := ceilDiv(total, numLines)

	var (
		lines   []string
		current strings.Builder
		curW    int
		left    = numLines
	)

	for i, word := range words {
		ifAdded := curW + widths[i]
		if curW > 0 {
			ifAdded++
		}
		remaining := span(i, len(words))

		if current.Len() > 0 &&
			(ifAdded > maxWidth ||
				(curW >= target && left > 1 && remaining >= ceilDiv(remaining, left))) {
			lines = append(lines, current.String())
			current.Reset()
			curW = 0
			left--
		}

		if current.Len() > 0 {
			current.WriteByte(' ')
			curW++
		}
		current.WriteString(word)
		curW += widths[i]
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
