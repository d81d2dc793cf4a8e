package report

import (
	"strings"
	"testing"

	"github.com/danieljhkim/ada/internal/diff"
)

func TestRender_HeaderOnly(t *testing.T) {
	got := New("Read", "main.go").Render()

	want := "⏺ Read(main.go)\n"
	if got != want {
		t.Fatalf("rendered = %q, want %q", got, want)
	}
}

func TestRender_Details(t *testing.T) {
	got := New("Delete", "old.txt").WithDetails("Deleted file old.txt").Render()

	want := "⏺ Delete(old.txt)\n  ⎿  Deleted file old.txt\n"
	if got != want {
		t.Fatalf("rendered = %q, want %q", got, want)
	}
}

func TestRender_PluralizedCounts(t *testing.T) {
	tests := []struct {
		name      string
		additions int
		removals  int
		want      string
	}{
		{"singular and plural", 1, 2, "Updated x.txt with 1 addition and 2 removals"},
		{"zero uses plural", 0, 1, "Updated x.txt with 0 additions and 1 removal"},
		{"both plural", 3, 0, "Updated x.txt with 3 additions and 0 removals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := diff.ChangeSummary{
				FilePath:  "x.txt",
				Additions: tt.additions,
				Removals:  tt.removals,
			}
			got := New("Edit", "x.txt").WithDiff(summary).Render()
			if !strings.Contains(got, tt.want) {
				t.Fatalf("rendered output missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestRender_DiffBlockExactFormat(t *testing.T) {
	summary := diff.Compute("x.txt", "line1\nline2\nline3\n", "line1\nCHANGED\nline3\n", 2)
	got := New("Edit", "x.txt").WithDiff(summary).Render()

	want := "⏺ Edit(x.txt)\n" +
		"  ⎿  Updated x.txt with 1 addition and 1 removal\n" +
		"       1      line1\n" +
		"       2    - line2\n" +
		"       2    + CHANGED\n" +
		"       3      line3\n"
	if got != want {
		t.Fatalf("rendered =\n%q\nwant:\n%q", got, want)
	}
}

func TestRender_DiffTakesPrecedenceOverDetails(t *testing.T) {
	summary := diff.ChangeSummary{FilePath: "a.txt", Additions: 1, Removals: 0}
	got := New("Write", "a.txt").WithDetails("ignored").WithDiff(summary).Render()

	if strings.Contains(got, "ignored") {
		t.Fatalf("details rendered alongside diff:\n%s", got)
	}
	if !strings.Contains(got, "Updated a.txt") {
		t.Fatalf("diff summary line missing:\n%s", got)
	}
}

func TestRender_NoTruncation(t *testing.T) {
	long := strings.Repeat("x", 500)
	summary := diff.ChangeSummary{
		FilePath:  "big.txt",
		Additions: 1,
		Removals:  0,
		Lines: []diff.LineRecord{
			{Number: 1, Tag: diff.Addition, Content: long},
		},
	}
	got := New("Edit", "big.txt").WithDiff(summary).Render()

	if !strings.Contains(got, long) {
		t.Fatal("long content was truncated or wrapped")
	}
}
