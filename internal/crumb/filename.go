package crumb

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Filename layout constants. The digit widths are load-bearing:
// zero-padding to fixed width is what makes name order chronological.
const (
	prefix = "cr-"
	ext    = ".json"

	secDigits  = 10
	nsecDigits = 9
)

// Filename encodes a timestamp and kind into a crumb filename.
func Filename(ts time.Time, kind Kind) string {
	return fmt.Sprintf("%s%0*d.%0*d-%s%s",
		prefix, secDigits, ts.Unix(), nsecDigits, ts.Nanosecond(), kind, ext)
}

// ParseFilename decodes a crumb filename into its kind and timestamp.
// Anything that does not match the pattern exactly is an error; callers
// treat such files as malformed crumbs and discard them.
func ParseFilename(name string) (Kind, time.Time, error) {
	base, ok := strings.CutSuffix(name, ext)
	if !ok {
		return 0, time.Time{}, fmt.Errorf("crumb filename %q: missing %s suffix", name, ext)
	}
	rest, ok := strings.CutPrefix(base, prefix)
	if !ok {
		return 0, time.Time{}, fmt.Errorf("crumb filename %q: missing %s prefix", name, prefix)
	}
	stamp, token, ok := strings.Cut(rest, "-")
	if !ok {
		return 0, time.Time{}, fmt.Errorf("crumb filename %q: missing kind", name)
	}

	secs, nsecs, ok := strings.Cut(stamp, ".")
	if !ok || len(secs) != secDigits || len(nsecs) != nsecDigits {
		return 0, time.Time{}, fmt.Errorf("crumb filename %q: malformed timestamp", name)
	}
	sec, err := strconv.ParseUint(secs, 10, 63)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("crumb filename %q: bad seconds: %w", name, err)
	}
	nsec, err := strconv.ParseUint(nsecs, 10, 63)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("crumb filename %q: bad nanoseconds: %w", name, err)
	}

	var kind Kind
	switch token {
	case tokenNew:
		kind = KindNew
	case tokenUpdate:
		kind = KindUpdate
	case tokenDelete:
		kind = KindDelete
	default:
		return 0, time.Time{}, fmt.Errorf("crumb filename %q: unknown kind %q", name, token)
	}

	return kind, time.Unix(int64(sec), int64(nsec)), nil
}
