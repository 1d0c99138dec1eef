package layout

import (
	"fmt"
	"io"
	"strconv"
)

func formatValue(val interface{}) string {
	switch v := val.(type) {
	case string:
		return strconv.Quote(v)
	case []byte:
		return fmt.Sprintf("%x", v)
	}
	return fmt.Sprint(val)
}

// Write prints a Dump in a human readable form, one line per record with its
// index and offset
func Write(w io.Writer, d *Dump) error {
	if _, err := fmt.Fprintf(w, "Layout   = %v\nSize     = %v\nFields   = %v\n\n", d.Layout, d.Size, len(d.Records)); err != nil {
		return err
	}

	for i, r := range d.Records {
		if _, err := fmt.Fprintf(w, "\t[%d/%d] %v\n", i, r.Offset, r); err != nil {
			return err
		}
	}

	if len(d.Trailing) == 0 {
		_, err := fmt.Fprintf(w, "\nTrailing = 0 bytes\n")
		return err
	}

	_, err := fmt.Fprintf(w, "\nTrailing = %d bytes (%x)\n", len(d.Trailing), d.Trailing)
	return err
}
