package repl

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/confix/lang"
)

// declKeyword is offered as a completion candidate at the start of a line.
const declKeyword = "global"

// wordBounds returns the byte offsets of the whitespace-delimited word
// containing the cursor.
func wordBounds(input string, cursor int) (start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor
	for start > 0 && !isSpace(input[start-1]) {
		start--
	}

	end = cursor
	for end < len(input) && !isSpace(input[end]) {
		end++
	}

	return start, end
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// computeMatches returns fuzzy completion candidates for the word under the
// cursor, along with the backing candidate list and word boundaries.
// Candidates are the session's declared symbol names, the expression
// operators, and the declaration keyword.
func (m model) computeMatches() (fuzzy.Matches, []string, int, int) {
	input := m.input.Value()
	cursor := m.input.Position()
	start, end := wordBounds(input, cursor)

	word := input[start:end]
	if strings.TrimSpace(word) == "" {
		return nil, nil, start, end
	}

	symbols := m.session.Symbols()
	candidates := make([]string, 0, symbols.Len()+8)

	for name := range symbols.Names() {
		candidates = append(candidates, name)
	}

	candidates = append(candidates, lang.Operators()...)

	if start == 0 {
		candidates = append(candidates, declKeyword)
	}

	return fuzzy.Find(word, candidates), candidates, start, end
}

// renderCandidateBar renders the horizontal completion bar, truncated to the
// terminal width. The selected candidate is highlighted while tab-cycling.
func renderCandidateBar(
	matches fuzzy.Matches,
	selected int,
	active bool,
	width int,
) string {
	const sep = "  "

	var (
		b       strings.Builder
		visible int
	)

	for i, match := range matches {
		cost := len(match.Str)
		if visible > 0 {
			cost += len(sep)
		}

		if visible+cost > width {
			b.WriteString(sep)
			b.WriteString(hintStyle.Render("…"))

			break
		}

		if visible > 0 {
			b.WriteString(sep)
		}

		if active && i == selected {
			b.WriteString(selectedStyle.Render(match.Str))
		} else {
			b.WriteString(suggestionStyle.Render(match.Str))
		}

		visible += cost
	}

	return b.String()
}
