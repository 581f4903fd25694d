package rowmul

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Header is the line printed before the rows of a result.
const Header = "Resultant Matrix:"

// ErrMismatch is returned by Verify when the concurrent and sequential
// products differ.
var ErrMismatch = errors.New("concurrent product does not match sequential product")

// Fprint writes m to w, preceded by Header. Every value is followed by a tab
// and every row ends with a newline.
func Fprint(w io.Writer, m Matrix) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(Header)
	bw.WriteByte('\n')

	var buf []byte
	for _, row := range m {
		for _, v := range row {
			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			buf = append(buf, '\t')
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing matrix: %w", err)
	}
	return nil
}

// Verify returns an error wrapping ErrMismatch if got differs from the
// sequential product of a and b.
func Verify(a, b, got Matrix) error {
	want := Sequential(a, b)
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				return fmt.Errorf("cell [%d][%d] = %d, want %d: %w", i, j, got[i][j], want[i][j], ErrMismatch)
			}
		}
	}
	return nil
}
