package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

var helpLines = []string{
	"Available commands:",
	"  draw                             Draw the board.",
	"  list                             List shapes with their ids and parameters.",
	"  shapes                           List the shapes add accepts.",
	"  add <shape> <parameters>         Add a shape to the board.",
	"  remove [id]                      Remove a shape, the selected one by default.",
	"  undo                             Revert the last change.",
	"  redo                             Re-apply the last reverted change.",
	"  clear                            Remove all shapes from the board.",
	"  select <id> | <x> <y>            Select a shape by id or by position.",
	"  edit <parameters>                Change the selected shape's size.",
	"  move <x> <y>                     Move the selected shape.",
	"  paint <glyph>                    Change the selected shape's glyph.",
	"  save <file-path>                 Save the board to a file.",
	"  load <file-path>                 Load a board from a file.",
	"  export <file.png>                Export the board as a PNG image.",
	"  dump <file.txt>                  Write the rendered board as text.",
	"  yank                             Copy the rendered board to the clipboard.",
	"  paste                            Run commands from the clipboard.",
	"  help                             Show this help message.",
	"  exit                             Exit.",
}

var shapeLines = []string{
	"Available shapes:",
	"  rectangle <x> <y> <glyph> <fill|frame> <width> <height>",
	"  circle <x> <y> <glyph> <fill|frame> <radius>",
	"  triangle <x> <y> <glyph> <fill|frame> <height> <width>",
	"  line <x> <y> <glyph> [fill|frame] <length> <angle>",
}

// CLI turns command lines into Surface operations and prints the outcome.
// It keeps no drawing state of its own.
type CLI struct {
	surface *Surface
	config  *Config
	out     io.Writer
	log     logrus.FieldLogger
	color   bool
}

func NewCLI(surface *Surface, config *Config, out io.Writer, log logrus.FieldLogger) *CLI {
	return &CLI{
		surface: surface,
		config:  config,
		out:     out,
		log:     log.WithField("component", "cli"),
		color:   config.Color,
	}
}

// Execute runs one command line. It reports true when the command asks to
// exit. Errors are printed and never stop the caller's loop.
func (c *CLI) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "exit", "quit":
		return true
	case "draw":
		c.draw()
	case "list":
		c.list()
	case "shapes":
		c.printLines(shapeLines)
	case "help":
		c.printLines(helpLines)
	case "add":
		err = c.add(args)
	case "remove":
		err = c.remove(args)
	case "undo":
		if c.surface.Undo() {
			c.printf("Reverted previous change.\n")
		} else {
			c.printf("No more changes to revert.\n")
		}
	case "redo":
		if c.surface.Redo() {
			c.printf("Re-applied change.\n")
		} else {
			c.printf("No more changes to re-apply.\n")
		}
	case "clear":
		c.surface.Clear()
		c.printf("Board cleared.\n")
	case "select":
		err = c.selectShape(args)
	case "edit":
		err = c.edit(args)
	case "move":
		err = c.move(args)
	case "paint":
		err = c.paint(args)
	case "save":
		err = c.save(args)
	case "load":
		err = c.load(args)
	case "export":
		err = c.export(args)
	case "dump":
		err = c.dump(args)
	case "yank":
		err = c.yank()
	case "paste":
		err = c.paste()
	default:
		c.printf("Unknown command: %s\n", cmd)
		return false
	}

	if err != nil {
		c.log.WithError(err).WithField("command", cmd).Debug("command failed")
		c.printf("Error: %v\n", err)
	}
	return false
}

func (c *CLI) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

// draw prints every cell followed by a space so the board looks square.
func (c *CLI) draw() {
	var b strings.Builder
	for _, row := range c.surface.Render() {
		for _, r := range row {
			b.WriteString(colorize(r, c.color))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	io.WriteString(c.out, b.String())
}

func (c *CLI) list() {
	items := c.surface.Items()
	if len(items) == 0 {
		c.printf("No shapes on the board.\n")
		return
	}
	selected, hasSelection := c.surface.Selected()
	for _, it := range items {
		marker := ""
		if hasSelection && it.ID == selected {
			marker = " (selected)"
		}
		c.printf("%d: %s%s\n", it.ID, Describe(it.Shape), marker)
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", a)
		}
		out[i] = n
	}
	return out, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out[i] = v
	}
	return out, nil
}

func parseGlyph(arg string) (rune, error) {
	if utf8.RuneCountInString(arg) != 1 {
		return 0, ErrInvalidGlyph
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return r, nil
}

// parseShape reads "<shape> <x> <y> <glyph> <fill|frame> <params...>". Lines
// may leave out the fill token since it does not change how they draw.
func parseShape(args []string) (Shape, error) {
	if len(args) < 4 {
		return nil, fmt.Errorf("%w: add <shape> <x> <y> <glyph> <fill|frame> <params...>", ErrArity)
	}
	kind, err := ParseKind(args[0])
	if err != nil {
		return nil, err
	}
	pos, err := parseInts(args[1:3])
	if err != nil {
		return nil, err
	}
	glyph, err := parseGlyph(args[3])
	if err != nil {
		return nil, err
	}

	rest := args[4:]
	fill := false
	switch {
	case len(rest) > 0 && (rest[0] == "fill" || rest[0] == "frame"):
		fill = rest[0] == "fill"
		rest = rest[1:]
	case kind != KindLine:
		return nil, fmt.Errorf("expected fill or frame for %s", strings.ToLower(kind.String()))
	}

	params, err := parseFloats(rest)
	if err != nil {
		return nil, err
	}
	return NewShape(kind, pos[0], pos[1], glyph, fill, params)
}

func (c *CLI) add(args []string) error {
	sh, err := parseShape(args)
	if err != nil {
		return err
	}
	id, err := c.surface.Place(sh)
	if err != nil {
		return err
	}
	c.printf("Added %s with id %d.\n", strings.ToLower(sh.Kind().String()), id)
	return nil
}

func (c *CLI) remove(args []string) error {
	switch len(args) {
	case 0:
		id, ok := c.surface.Selected()
		if !ok {
			return ErrNoSelection
		}
		if err := c.surface.RemoveSelected(); err != nil {
			return err
		}
		c.printf("Removed shape %d.\n", id)
		return nil
	case 1:
		ids, err := parseInts(args)
		if err != nil {
			return err
		}
		if err := c.surface.Remove(ids[0]); err != nil {
			return err
		}
		c.printf("Removed shape %d.\n", ids[0])
		return nil
	default:
		return fmt.Errorf("%w: remove [id]", ErrArity)
	}
}

func (c *CLI) selectShape(args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	switch len(values) {
	case 1:
		if err := c.surface.Select(values[0]); err != nil {
			return err
		}
		c.printf("Selected shape %d.\n", values[0])
	case 2:
		if id, ok := c.surface.SelectAt(values[0], values[1]); ok {
			c.printf("Selected shape %d.\n", id)
		} else {
			c.printf("No shape at (%d, %d); selection cleared.\n", values[0], values[1])
		}
	default:
		return fmt.Errorf("%w: select <id> | <x> <y>", ErrArity)
	}
	return nil
}

func (c *CLI) edit(args []string) error {
	values, err := parseFloats(args)
	if err != nil {
		return err
	}
	if err := c.surface.EditSize(values); err != nil {
		return err
	}
	c.printf("Shape resized.\n")
	return nil
}

func (c *CLI) move(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: move <x> <y>", ErrArity)
	}
	pos, err := parseInts(args)
	if err != nil {
		return err
	}
	if err := c.surface.Move(pos[0], pos[1]); err != nil {
		return err
	}
	c.printf("Shape moved to (%d, %d).\n", pos[0], pos[1])
	return nil
}

func (c *CLI) paint(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: paint <glyph>", ErrArity)
	}
	glyph, err := parseGlyph(args[0])
	if err != nil {
		return err
	}
	if err := c.surface.Paint(glyph); err != nil {
		return err
	}
	c.printf("Shape painted '%c'.\n", glyph)
	return nil
}

// pathArg takes the single file argument and resolves it against the save
// directory.
func (c *CLI) pathArg(args []string, usage string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s", ErrArity, usage)
	}
	return c.config.SavePath(args[0])
}

func (c *CLI) save(args []string) error {
	path, err := c.pathArg(args, "save <file-path>")
	if err != nil {
		return err
	}
	if err := c.surface.Save(path); err != nil {
		return err
	}
	c.printf("Blackboard saved to %s\n", path)
	return nil
}

func (c *CLI) load(args []string) error {
	path, err := c.pathArg(args, "load <file-path>")
	if err != nil {
		return err
	}
	if err := c.surface.Load(path); err != nil {
		return err
	}
	c.printf("Blackboard loaded from %s\n", path)
	return nil
}

func (c *CLI) export(args []string) error {
	path, err := c.pathArg(args, "export <file.png>")
	if err != nil {
		return err
	}
	if c.surface.Len() == 0 {
		return errors.New("nothing to export")
	}
	if err := exportPNG(c.surface.Render(), path); err != nil {
		return err
	}
	c.printf("Exported PNG to %s\n", path)
	return nil
}

func (c *CLI) dump(args []string) error {
	path, err := c.pathArg(args, "dump <file.txt>")
	if err != nil {
		return err
	}
	if err := exportVisualTXT(c.surface.Render(), path); err != nil {
		return err
	}
	c.printf("Wrote board text to %s\n", path)
	return nil
}

func (c *CLI) yank() error {
	if err := writeClipboardText(c.surface.Render().String()); err != nil {
		return err
	}
	c.printf("Board copied to clipboard.\n")
	return nil
}

// paste runs each clipboard line as a command. Nested paste and exit lines
// are skipped.
func (c *CLI) paste() error {
	text, err := readClipboardText()
	if err != nil {
		return err
	}

	ran := 0
	for _, line := range splitLines(cleanClipboardText(text)) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "exit", "quit", "paste":
			continue
		}
		c.Execute(line)
		ran++
	}
	c.printf("Ran %d commands from clipboard.\n", ran)
	return nil
}
