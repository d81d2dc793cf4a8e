// Package diff computes line-level edit scripts between two versions of a
// file and trims them down to display windows around each change.
//
// The package is a pure text transformation: no I/O, no shared state. Callers
// load file contents themselves and hand strings in.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangeTag classifies one line of an edit script.
type ChangeTag int

const (
	// Context marks a line present in both the old and new content.
	Context ChangeTag = iota

	// Addition marks a line present only in the new content.
	Addition

	// Removal marks a line present only in the old content.
	Removal
)

// LineRecord is one line of an edit script.
type LineRecord struct {
	// Number is the line number in the new file. Removal records carry the
	// number of the position the line was removed before, so a removal and
	// the record that follows it share a number. See Lines.
	Number int

	Tag ChangeTag

	// Content is the line text without its trailing line terminator.
	Content string
}

// ChangeSummary describes the full change made to one file. Additions and
// Removals always count the complete edit script; Lines holds only the
// windowed subset selected for display.
type ChangeSummary struct {
	FilePath  string
	Additions int
	Removals  int
	Lines     []LineRecord
}

// Compute diffs oldContent against newContent and returns a summary with the
// edit script windowed to contextLines of unchanged lines around each change.
func Compute(filePath, oldContent, newContent string, contextLines int) ChangeSummary {
	script := Lines(oldContent, newContent)

	additions := 0
	removals := 0
	for _, rec := range script {
		switch rec.Tag {
		case Addition:
			additions++
		case Removal:
			removals++
		}
	}

	return ChangeSummary{
		FilePath:  filePath,
		Additions: additions,
		Removals:  removals,
		Lines:     Window(script, contextLines),
	}
}

// Lines computes the full line-level edit script between oldContent and
// newContent. Unchanged lines are tagged Context, lines only in oldContent
// Removal, lines only in newContent Addition, in the relative order of both
// inputs.
//
// Line numbers follow the new file: a single counter starts at 1 and is
// emitted with every record, then incremented — except after a Removal, which
// keeps the counter in place so the removed line is stamped with the number
// of the line that takes its position.
func Lines(oldContent, newContent string) []LineRecord {
	dmp := diffmatchpatch.New()

	// Diff on whole lines: each distinct line becomes one rune.
	oldRunes, newRunes, lineIndex := dmp.DiffLinesToRunes(oldContent, newContent)
	diffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(oldRunes, newRunes, false))

	var records []LineRecord
	number := 1

	for _, d := range diffs {
		var tag ChangeTag
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			tag = Removal
		case diffmatchpatch.DiffInsert:
			tag = Addition
		default:
			tag = Context
		}

		for _, r := range d.Text {
			idx := int(r)
			if idx < 0 || idx >= len(lineIndex) {
				continue
			}

			records = append(records, LineRecord{
				Number:  number,
				Tag:     tag,
				Content: strings.TrimRight(lineIndex[idx], "\n"),
			})

			if tag != Removal {
				number++
			}
		}
	}

	return records
}
