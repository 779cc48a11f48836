package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mitchellh/colorstring"

	"github.com/rescale/dirlist/internal/localfs"
	"github.com/rescale/dirlist/internal/util/sanitize"
)

const indentUnit = "  "

// style is the icon and colour used for one kind of entry.
type style struct {
	icon  string
	color string
}

var styles = map[localfs.Kind]style{
	localfs.KindDirectory: {icon: "📁", color: "blue"},
	localfs.KindFile:      {icon: "📄", color: "green"},
	localfs.KindOther:     {icon: "🔗", color: "yellow"},
}

const sizeColor = "light_gray"

// Printer writes one line per entry: indent, icon, coloured name and a
// "(N bytes)" annotation.
type Printer struct {
	out      io.Writer
	colorize colorstring.Colorize
}

// NewPrinter creates a Printer for out. Colour is decided once from mode.
func NewPrinter(out io.Writer, mode ColorMode) *Printer {
	enabled := mode.Enabled(out)
	if f, ok := out.(*os.File); ok && enabled {
		// Translates ANSI sequences on Windows consoles; a no-op elsewhere.
		out = colorable.NewColorable(f)
	}
	return &Printer{
		out: out,
		colorize: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !enabled,
		},
	}
}

// Entry writes a single entry line.
func (p *Printer) Entry(e localfs.Entry, indent int) error {
	st := styles[e.Kind]
	_, err := fmt.Fprintf(p.out, "%s%s %s%s\n",
		strings.Repeat(indentUnit, indent),
		st.icon,
		p.paint(st.color, sanitize.DisplayName(e.Name)),
		p.paint(sizeColor, fmt.Sprintf(" (%d bytes)", e.Size)),
	)
	return err
}

// SubdirectoryHeader writes the blank line and header that precede a
// recursive descent into name.
func (p *Printer) SubdirectoryHeader(name string, indent int) error {
	_, err := fmt.Fprintf(p.out, "\n%sSubdirectory: %s\n", strings.Repeat(indentUnit, indent), sanitize.DisplayName(name))
	return err
}

// paint wraps text in a colour. Only the colour codes go through colorstring
// so brackets in file names are never read as markup.
func (p *Printer) paint(color, text string) string {
	start := p.colorize.Color("[" + color + "]")
	if start == "" {
		return text
	}
	return start + text + p.colorize.Color("[reset]")
}
