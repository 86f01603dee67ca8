package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"paf/internal/diag"
	"paf/internal/source"
)

type palette struct {
	err, warn, info, note, gutter, caret, path *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgBlue, color.Bold),
		note:   color.New(color.FgCyan),
		gutter: color.New(color.FgHiBlack),
		caret:  color.New(color.FgGreen, color.Bold),
		path:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.gutter, p.caret, p.path} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) error {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		d.Code.ID(),
		d.Message,
	)
	writeExcerpt(&sb, f, fs, d.Primary, int(opts.Context), p)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(&sb, "  %s %s:%d:%d: %s\n",
				p.note.Sprint("note:"), formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeExcerpt печатает строку со Span и строки контекста вокруг неё,
// под основной строкой ставит ^~~~ с учётом ширины символов.
func writeExcerpt(sb *strings.Builder, f *source.File, fs *source.FileSet, sp source.Span, context int, p palette) {
	start, end := fs.Resolve(sp)
	line := start.Line

	first := max(int(line)-context, 1)
	last := int(line) + context
	gutterWidth := len(fmt.Sprint(last))

	for n := first; n <= last; n++ {
		text, ok := lineText(f, uint32(n)) //nolint:gosec // n >= 1
		if !ok {
			break
		}
		fmt.Fprintf(sb, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, n), expandTabs(text))
		if uint32(n) != line { //nolint:gosec // n >= 1
			continue
		}

		startCol := int(start.Col) - 1
		endCol := len(text)
		if end.Line == line {
			endCol = min(int(end.Col)-1, len(text))
		}
		startCol = min(startCol, len(text))
		pad := runewidth.StringWidth(expandTabs(text[:startCol]))
		width := max(runewidth.StringWidth(expandTabs(text[startCol:endCol])), 1)

		fmt.Fprintf(sb, "%s %s%s\n",
			p.gutter.Sprintf("%*s |", gutterWidth, ""),
			strings.Repeat(" ", pad),
			p.caret.Sprint("^"+strings.Repeat("~", width-1)),
		)
	}
}

// lineText возвращает строку по номеру; ok=false за концом файла.
func lineText(f *source.File, n uint32) (string, bool) {
	if int(n) > len(f.LineIdx)+1 {
		return "", false
	}
	return strings.TrimSuffix(f.GetLine(n), "\r"), true
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
