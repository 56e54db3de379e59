package mission

import (
	"fmt"
	"io"
)

// WriteOutput writes records as the single flat comma-delimited stream
// described in spec.md §6: no separator before the first record, a comma
// before every subsequent one, latitude/longitude in fixed-point decimal
// with seven fractional digits, altitude as a plain integer.
func WriteOutput(w io.Writer, records []Record) error {
	for i, r := range records {
		if i != 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%d,%.7f,%.7f,%d", r.Ordinal, r.Latitude, r.Longitude, int(r.AltitudeFeet))
		if err != nil {
			return err
		}
	}
	return nil
}
