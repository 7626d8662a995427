package store

import (
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timeValue scans a timestamp or date column. PostgreSQL returns time.Time;
// SQLite may return the stored text, e.g. for RETURNING columns, which is
// parsed with the layouts go-sqlite3 itself writes and reads.
type timeValue struct {
	dest *time.Time
}

func scanTime(dest *time.Time) timeValue {
	return timeValue{dest: dest}
}

// Scan implements [database/sql.Scanner].
func (v timeValue) Scan(src any) error {
	switch s := src.(type) {
	case time.Time:
		*v.dest = s
		return nil
	case string:
		return v.parse(s)
	case []byte:
		return v.parse(string(s))
	case nil:
		*v.dest = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported time value of type %T", src)
	}
}

func (v timeValue) parse(s string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*v.dest = t
			return nil
		}
	}

	return fmt.Errorf("unparseable time value %q", s)
}
