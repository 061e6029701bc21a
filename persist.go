package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// withFile opens path, hands the file to fn and closes it on every return
// path. A close error is reported when fn itself succeeded.
func withFile(path string, flag int, perm os.FileMode, fn func(*os.File) error) error {
	file, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return err
	}
	return closeAfter(file, fn)
}

func closeAfter(file *os.File, fn func(*os.File) error) (err error) {
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(file)
}

// writeFileAtomic writes through a temp file in the target directory so an
// existing file is only replaced by a complete one. The existing file's
// permissions are kept.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	mode := os.FileMode(0644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	err = closeAfter(tmp, func(f *os.File) error {
		w := bufio.NewWriter(f)
		if err := write(w); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
		return f.Chmod(mode)
	})
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *Surface) Save(path string) error {
	if err := writeFileAtomic(path, s.encode); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	s.log.WithFields(logrus.Fields{"path": path, "shapes": len(s.shapes)}).Info("board saved")
	return nil
}

// Load replaces the board with the contents of path. Nothing changes unless
// the whole file is valid.
func (s *Surface) Load(path string) error {
	var d *drawing
	err := withFile(path, os.O_RDONLY, 0, func(f *os.File) error {
		var err error
		d, err = decodeDrawing(f)
		return err
	})
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	s.replace(d)
	s.log.WithFields(logrus.Fields{"path": path, "shapes": len(s.shapes)}).Info("board loaded")
	return nil
}

func (s *Surface) encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", s.width, s.height); err != nil {
		return err
	}
	for _, it := range s.shapes {
		if err := encodeShape(w, it.Shape); err != nil {
			return err
		}
	}
	return nil
}

func encodeShape(w io.Writer, sh Shape) error {
	x, y := sh.Position()
	fill := 0
	if sh.Filled() {
		fill = 1
	}
	var params string
	switch v := sh.(type) {
	case *Rectangle:
		params = fmt.Sprintf("%d %d", v.Width, v.Height)
	case *Circle:
		params = strconv.Itoa(v.Radius)
	case *Triangle:
		params = fmt.Sprintf("%d %d", v.Height, v.Width)
	case *Line:
		params = fmt.Sprintf("%d %s", v.Length, strconv.FormatFloat(v.Angle, 'g', -1, 64))
	default:
		return fmt.Errorf("%w: %T", ErrUnknownShape, sh)
	}
	_, err := fmt.Fprintf(w, "%s %d %d %c %d %s\n", sh.Kind(), x, y, sh.Glyph(), fill, params)
	return err
}

func decodeDrawing(r io.Reader) (*drawing, error) {
	scanner := bufio.NewScanner(r)
	var d *drawing
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if d == nil {
			width, height, err := parseHeader(fields, lineNo)
			if err != nil {
				return nil, err
			}
			d = &drawing{width: width, height: height}
			continue
		}

		sh, err := parseRecord(fields, lineNo)
		if err != nil {
			return nil, err
		}
		if !sh.WithinBounds(d.width, d.height) {
			return nil, &FormatError{Line: lineNo, Err: ErrOutOfBounds}
		}
		for _, other := range d.shapes {
			if other.SameSpot(sh) {
				return nil, &FormatError{Line: lineNo, Err: ErrDuplicate}
			}
		}
		d.shapes = append(d.shapes, sh)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &FormatError{Line: lineNo + 1, Field: "header", Err: fmt.Errorf("%w: missing board dimensions", ErrFormat)}
	}
	return d, nil
}

func parseHeader(fields []string, lineNo int) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, &FormatError{Line: lineNo, Field: "header", Err: fmt.Errorf("%w: want <width> <height>", ErrFormat)}
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil || !validBoardSide(width) {
		return 0, 0, &FormatError{Line: lineNo, Field: "width", Err: ErrInvalidDimensions}
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil || !validBoardSide(height) {
		return 0, 0, &FormatError{Line: lineNo, Field: "height", Err: ErrInvalidDimensions}
	}
	return width, height, nil
}

// parseRecord reads "<Tag> <x> <y> <glyph> <0|1> <params...>".
func parseRecord(fields []string, lineNo int) (Shape, error) {
	fail := func(field string, err error) (Shape, error) {
		return nil, &FormatError{Line: lineNo, Field: field, Err: err}
	}
	if len(fields) < 5 {
		return fail("", fmt.Errorf("%w: want <type> <x> <y> <glyph> <fill> <params...>", ErrFormat))
	}

	kind, err := ParseKind(fields[0])
	if err != nil {
		return fail("type", err)
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return fail("x", fmt.Errorf("%w: %q", ErrFormat, fields[1]))
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return fail("y", fmt.Errorf("%w: %q", ErrFormat, fields[2]))
	}
	glyph, _ := utf8.DecodeRuneInString(fields[3])
	if utf8.RuneCountInString(fields[3]) != 1 || !validGlyph(glyph) {
		return fail("glyph", ErrInvalidGlyph)
	}

	var fill bool
	switch fields[4] {
	case "0":
	case "1":
		fill = true
	default:
		return fail("fill", fmt.Errorf("%w: %q is not 0 or 1", ErrFormat, fields[4]))
	}

	raw := fields[5:]
	if len(raw) != kind.Arity() {
		return fail("params", fmt.Errorf("%w: %s takes %d, got %d", ErrArity, kind, kind.Arity(), len(raw)))
	}
	params := make([]float64, len(raw))
	for i, p := range raw {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return fail(fmt.Sprintf("param %d", i+1), fmt.Errorf("%w: %q", ErrFormat, p))
		}
		params[i] = v
	}

	sh, err := NewShape(kind, x, y, glyph, fill, params)
	if err != nil {
		return fail("params", err)
	}
	return sh, nil
}
