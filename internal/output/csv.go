// Package output writes generated series as delimited tables.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// TimeLayout is sortable, second resolution, with a numeric UTC offset.
const TimeLayout = "2006-01-02 15:04:05-07:00"

var (
	// ErrDestinationNotFound is returned when the output directory does not exist.
	ErrDestinationNotFound = errors.New("destination path not found")
	// ErrColumnLength is returned when a column does not match the timestamp count.
	ErrColumnLength = errors.New("column length does not match timestamps")
)

// Column is one named numeric column of a table.
type Column struct {
	Name   string
	Values []float64
}

// WriteSeries writes a table with a leading "timestamp" column followed by
// cols, one row per timestamp. The file only appears at path once it has
// been completely written.
func WriteSeries(path string, times []time.Time, cols ...Column) error {
	header := make([]string, 0, len(cols)+1)
	header = append(header, "timestamp")
	for _, c := range cols {
		if len(c.Values) != len(times) {
			return fmt.Errorf("%s has %d values for %d timestamps: %w", c.Name, len(c.Values), len(times), ErrColumnLength)
		}
		header = append(header, c.Name)
	}

	return writeAtomic(path, func(w *csv.Writer) error {
		if err := w.Write(header); err != nil {
			return err
		}

		row := make([]string, len(header))
		for i, t := range times {
			row[0] = fmtTime(t)
			for j, c := range cols {
				row[j+1] = fmtFloat(c.Values[i])
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeAtomic streams rows into a temp file in the destination directory and
// renames it over path on success. The directory is never created.
func writeAtomic(path string, fill func(w *csv.Writer) error) (err error) {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return fmt.Errorf("%s: %w", dir, ErrDestinationNotFound)
	}
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err = fill(w); err != nil {
		return err
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}

	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func fmtTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
