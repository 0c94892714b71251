// SPDX-License-Identifier: MIT
// Package: serialize
//
// writer.go - header, records, footer.
//
// Shape of the output (determinant family shown):
//
//	typedef struct {
//	  int rows;
//	  int cols;
//	  float* val;
//	} matrix_info_t;
//
//	static struct {
//	  matrix_info_t op;
//	  float ans;
//	} data[] = {
//	  // 0
//	  {
//	    {
//	      2,
//	      2,
//	      (float[]) {
//	          1, -3,
//	          4,  0,
//	      },
//	    },
//	    12
//	  },
//	};

package serialize

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/katalvlaran/cmatfixture/fixture"
	"github.com/katalvlaran/cmatfixture/matrix"
)

// Indentation of the record levels.
const (
	indentRecord = "  "
	indentField  = "    "
	indentInner  = "      "
	indentValues = "        "
)

// Writer renders one family's sequence to an io.Writer. Output is buffered;
// Footer flushes. After the first error every call returns that error.
type Writer struct {
	w      *bufio.Writer
	layout Layout
	index  int
	err    error
}

// NewWriter returns a Writer for layout l.
func NewWriter(w io.Writer, l Layout) *Writer {
	return &Writer{w: bufio.NewWriter(w), layout: l}
}

// Header writes the matrix typedef and the opening of the record array.
func (w *Writer) Header() error {
	if w.err != nil {
		return w.err
	}

	var sb strings.Builder
	sb.WriteString("typedef struct {\n")
	if w.layout.WithCols {
		sb.WriteString("  int rows;\n  int cols;\n")
	} else {
		sb.WriteString("  int size;\n")
	}
	fmt.Fprintf(&sb, "  %s* val;\n} matrix_info_t;\n\nstatic struct {\n", w.layout.Elem)
	for _, m := range w.layout.Members {
		sb.WriteString("  " + m + "\n")
	}
	sb.WriteString("} data[] = {\n")

	return w.write(sb.String())
}

// Record renders one record. Its Kind must match the layout.
func (w *Writer) Record(rec fixture.Record) error {
	if w.err != nil {
		return w.err
	}
	if rec == nil || rec.Kind() != w.layout.Kind {
		w.err = fmt.Errorf("Record %d: %w", w.index, ErrKindMismatch)
		return w.err
	}

	text, err := RenderRecord(w.layout, w.index, rec)
	if err != nil {
		w.err = err
		return err
	}
	w.index++

	return w.write(text)
}

// Footer closes the record array and flushes.
func (w *Writer) Footer() error {
	if w.err != nil {
		return w.err
	}
	if err := w.write("};\n"); err != nil {
		return err
	}
	if err := w.w.Flush(); err != nil {
		w.err = fmt.Errorf("Footer: flush: %w", err)
	}

	return w.err
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	return w.index
}

func (w *Writer) write(s string) error {
	if _, err := w.w.WriteString(s); err != nil {
		w.err = fmt.Errorf("write: %w", err)
	}

	return w.err
}

// Sequence writes header, every record, and footer for family k.
func Sequence(out io.Writer, k fixture.Kind, recs []fixture.Record) error {
	l, err := LayoutFor(k)
	if err != nil {
		return err
	}

	w := NewWriter(out, l)
	if err = w.Header(); err != nil {
		return err
	}
	for _, rec := range recs {
		if err = w.Record(rec); err != nil {
			return err
		}
	}

	return w.Footer()
}

// RenderRecord renders a single record initializer (with trailing "},\n").
// index is only used for the optional "// <index>" comment.
func RenderRecord(l Layout, index int, rec fixture.Record) (string, error) {
	var sb strings.Builder
	if l.IndexComment {
		fmt.Fprintf(&sb, "%s// %d\n", indentRecord, index)
	}
	sb.WriteString(indentRecord + "{\n")

	var err error
	switch r := rec.(type) {
	case fixture.DeterminantRecord:
		if err = writeBlock(&sb, l, r.Op, l.In); err == nil {
			err = writeScalar(&sb, l.Scalar, r.Ans, false)
		}
	case fixture.DotRecord:
		if err = writeBlock(&sb, l, r.Op1, l.In); err == nil {
			if err = writeBlock(&sb, l, r.Op2, l.In); err == nil {
				err = writeScalar(&sb, l.Scalar, r.Ans, false)
			}
		}
	case fixture.InverseRecord:
		if err = writeBlock(&sb, l, r.Op, l.In); err == nil {
			err = writeBlock(&sb, l, r.Ans, l.Out)
		}
	case fixture.MulRecord:
		if err = writeBlock(&sb, l, r.Op1, l.In); err == nil {
			if err = writeScalar(&sb, l.Scalar, new(big.Rat).SetInt64(r.Op2), true); err == nil {
				err = writeBlock(&sb, l, r.Ans, l.Out)
			}
		}
	case fixture.BinaryRecord:
		if err = writeBlock(&sb, l, r.Op1, l.In); err == nil {
			if err = writeBlock(&sb, l, r.Op2, l.In); err == nil {
				err = writeBlock(&sb, l, r.Ans, l.Out)
			}
		}
	case fixture.TransposeRecord:
		if err = writeBlock(&sb, l, r.Op, l.In); err == nil {
			err = writeBlock(&sb, l, r.Ans, l.Out)
		}
	default:
		err = fmt.Errorf("record type %T: %w", rec, ErrKindMismatch)
	}
	if err != nil {
		return "", fmt.Errorf("RenderRecord %d (%v): %w", index, l.Kind, err)
	}

	sb.WriteString(indentRecord + "},\n")

	return sb.String(), nil
}

// writeBlock renders one matrix_info_t initializer, one source row per line.
func writeBlock(sb *strings.Builder, l Layout, m *matrix.Dense, f Field) error {
	if m == nil {
		return ErrNilValue
	}

	fmt.Fprintf(sb, "%s{\n%s%d,\n", indentField, indentInner, m.Rows())
	if l.WithCols {
		fmt.Fprintf(sb, "%s%d,\n", indentInner, m.Cols())
	}
	fmt.Fprintf(sb, "%s(%s[]) {\n", indentInner, l.Elem)

	vals := m.Values()
	cols := m.Cols()
	cells := make([]string, cols)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < cols; j++ {
			s, err := f.Format(vals[i*cols+j])
			if err != nil {
				return err
			}
			cells[j] = s
		}
		sb.WriteString(indentValues + strings.Join(cells, ",") + ",\n")
	}

	sb.WriteString(indentInner + "},\n" + indentField + "},\n")

	return nil
}

// writeScalar renders a scalar on its own line; operands carry a trailing comma,
// the final answer does not.
func writeScalar(sb *strings.Builder, f Field, v *big.Rat, comma bool) error {
	s, err := f.Format(v)
	if err != nil {
		return err
	}
	sb.WriteString(indentField + s)
	if comma {
		sb.WriteByte(',')
	}
	sb.WriteByte('\n')

	return nil
}
