package inspect

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors a Console uses for the parts of a slot table.
type Palette struct {
	Header *color.Color
	Index  *color.Color
	Live   *color.Color
	Vacant *color.Color
}

// DefaultPalette returns the palette used if none is given to NewConsole.
func DefaultPalette() *Palette {
	return &Palette{
		Header: color.New(color.Bold),
		Index:  color.New(color.FgBlue),
		Live:   color.New(color.FgGreen),
		Vacant: color.New(color.FgHiBlack),
	}
}

// Config configures console output.
type Config struct {
	LineWidth int            // target line length in fixed-width positions
	Context   *uax11.Context // context for measuring the width of element text
}

// Console outputs snapshots as slot tables to a console with a fixed width
// font. Every slot is a cell of the form `index:text`; cells are padded to
// equal width and wrapped at the configured line width.
type Console struct {
	colors *Palette
	config *Config
}

// NewConsole creates a console formatter. If palette is nil, DefaultPalette
// is used. If config is nil, a config is created from the properties of the
// current terminal.
func NewConsole(palette *Palette, config *Config) *Console {
	c := &Console{colors: palette, config: config}
	if c.colors == nil {
		c.colors = DefaultPalette()
	}
	if c.config == nil {
		c.config = ConfigFromTerminal()
		c.config.Context = uax11.ContextFromEnvironment()
	}
	if c.config.Context == nil {
		c.config.Context = uax11.LatinContext
	}
	return c
}

// Print outputs a snapshot to stdout.
func (c *Console) Print(snap Snapshot) error {
	return c.Write(os.Stdout, snap)
}

const vacantMark = "-"

// Write outputs a snapshot to w.
func (c *Console) Write(w io.Writer, snap Snapshot) error {
	if _, err := c.colors.Header.Fprintln(w, snap.Title()); err != nil {
		return err
	}
	cellw := 1
	for _, s := range snap.Slots {
		if width := c.cellWidth(s); width > cellw {
			cellw = width
		}
	}
	perLine := c.config.LineWidth / (cellw + 1)
	if perLine < 1 {
		perLine = 1
	}
	for i, s := range snap.Slots {
		if i > 0 && i%perLine == 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		} else if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := c.writeCell(w, s, cellw); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (c *Console) cellWidth(s Slot) int {
	text := vacantMark
	if s.Live {
		text = s.Text
	}
	return len(strconv.Itoa(s.Index)) + 1 + uax11.StringWidth(grapheme.StringFromString(text), c.config.Context)
}

func (c *Console) writeCell(w io.Writer, s Slot, cellw int) error {
	if _, err := c.colors.Index.Fprint(w, strconv.Itoa(s.Index)+":"); err != nil {
		return err
	}
	var err error
	if s.Live {
		_, err = c.colors.Live.Fprint(w, s.Text)
	} else {
		_, err = c.colors.Vacant.Fprint(w, vacantMark)
	}
	if err != nil {
		return err
	}
	if pad := cellw - c.cellWidth(s); pad > 0 {
		_, err = io.WriteString(w, strings.Repeat(" ", pad))
	}
	return err
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets Config.LineWidth accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
