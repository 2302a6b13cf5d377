package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Level represents the depth of a Johnny Decimal number
type Level int

const (
	LevelUnknown  Level = iota
	LevelArea           // 10-19
	LevelCategory       // 11
	LevelID             // 11.04
)

func (l Level) String() string {
	switch l {
	case LevelArea:
		return "area"
	case LevelCategory:
		return "category"
	case LevelID:
		return "id"
	default:
		return "unknown"
	}
}

// ParseLevel is the inverse of Level.String
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "area":
		return LevelArea
	case "category":
		return LevelCategory
	case "id":
		return LevelID
	default:
		return LevelUnknown
	}
}

const (
	// HomeID is the slot reserved for a category's own files; it is indexed but never allocated
	HomeID = 0
	// FirstID is the first allocatable ID slot
	FirstID = 1
	// MaxID is the last allocatable ID slot
	MaxID = 99
)

var (
	areaNumberRegex     = regexp.MustCompile(`^([0-9]{2})-([0-9]{2})$`)
	categoryNumberRegex = regexp.MustCompile(`^([0-9]{2})$`)
	idNumberRegex       = regexp.MustCompile(`^([0-9]{2})\.([0-9]{2})$`)

	areaFolderRegex     = regexp.MustCompile(`^([0-9]{2})-([0-9]{2})([ ._-])(.+)$`)
	categoryFolderRegex = regexp.MustCompile(`^([0-9]{2})([ ._-])(.+)$`)
	idFolderRegex       = regexp.MustCompile(`^([0-9]{2})\.([0-9]{2})([ ._-])(.+)$`)
)

// Number is an immutable Johnny Decimal number at one of the three levels.
// The zero value is not a valid number. Numbers are comparable and can be
// used as map keys.
type Number struct {
	level Level
	major int // area start for areas, category number otherwise
	minor int // ID slot for IDs
}

// NewArea returns the area whose range starts at start (e.g. 10 for 10-19)
func NewArea(start int) (Number, error) {
	if start < 0 || start > 90 || start%10 != 0 {
		return Number{}, fmt.Errorf("invalid area start %d: must be a multiple of ten between 00 and 90", start)
	}
	return Number{level: LevelArea, major: start}, nil
}

// NewCategory returns category c (00-99)
func NewCategory(c int) (Number, error) {
	if c < 0 || c > 99 {
		return Number{}, fmt.Errorf("invalid category %d: must be between 00 and 99", c)
	}
	return Number{level: LevelCategory, major: c}, nil
}

// NewID returns ID c.id; id 00 is the category's home slot
func NewID(c, id int) (Number, error) {
	if c < 0 || c > 99 {
		return Number{}, fmt.Errorf("invalid category %d: must be between 00 and 99", c)
	}
	if id < HomeID || id > MaxID {
		return Number{}, fmt.Errorf("invalid ID %d: must be between 00 and 99", id)
	}
	return Number{level: LevelID, major: c, minor: id}, nil
}

func (n Number) Level() Level { return n.level }

func (n Number) IsZero() bool { return n.level == LevelUnknown }

// Area returns the first category number of the area containing n
func (n Number) Area() int {
	if n.level == LevelArea {
		return n.major
	}
	return n.major / 10 * 10
}

// Category returns the category number for categories and IDs, or -1 for areas
func (n Number) Category() int {
	if n.level == LevelArea || n.level == LevelUnknown {
		return -1
	}
	return n.major
}

// ID returns the ID slot for IDs, or -1 otherwise
func (n Number) ID() int {
	if n.level != LevelID {
		return -1
	}
	return n.minor
}

// AreaNumber returns the area containing n
func (n Number) AreaNumber() Number {
	return Number{level: LevelArea, major: n.Area()}
}

// CategoryNumber returns the category containing an ID, or n itself for categories
func (n Number) CategoryNumber() Number {
	if n.level == LevelID || n.level == LevelCategory {
		return Number{level: LevelCategory, major: n.major}
	}
	return Number{}
}

// Equal reports whether two numbers are the same
func (n Number) Equal(o Number) bool { return n == o }

// Compare orders numbers the way they appear in a listing:
// 10-19 < 11 < 11.00 < 11.01 < 12 < 20-29
func (n Number) Compare(o Number) int {
	if d := n.Area() - o.Area(); d != 0 {
		return d
	}
	if n.level == LevelArea || o.level == LevelArea {
		return int(n.level) - int(o.level)
	}
	if d := n.major - o.major; d != 0 {
		return d
	}
	if d := int(n.level) - int(o.level); d != 0 {
		return d
	}
	return n.minor - o.minor
}

// String renders the number as 10-19, 11 or 11.04
func (n Number) String() string {
	switch n.level {
	case LevelArea:
		return fmt.Sprintf("%02d-%02d", n.major, n.major+9)
	case LevelCategory:
		return fmt.Sprintf("%02d", n.major)
	case LevelID:
		return fmt.Sprintf("%02d.%02d", n.major, n.minor)
	default:
		return ""
	}
}

// ParseNumber parses a bare JD number: 10-19, 11 or 11.04
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)

	if m := idNumberRegex.FindStringSubmatch(s); m != nil {
		return NewID(atoi(m[1]), atoi(m[2]))
	}
	if m := categoryNumberRegex.FindStringSubmatch(s); m != nil {
		return NewCategory(atoi(m[1]))
	}
	if m := areaNumberRegex.FindStringSubmatch(s); m != nil {
		return parseAreaRange(m[1], m[2])
	}
	return Number{}, fmt.Errorf("invalid JD number: %q", s)
}

// ParseNumberAt parses a bare number and checks it has the expected level
func ParseNumberAt(level Level, s string) (Number, error) {
	n, err := ParseNumber(s)
	if err != nil {
		return Number{}, err
	}
	if n.Level() != level {
		return Number{}, fmt.Errorf("expected %s number, got %s %s", level, n.Level(), n)
	}
	return n, nil
}

// ParseQuery parses a user query. Anything that is not a well-formed number
// fails with ErrNotFound; resolution never guesses.
func ParseQuery(query string) (Number, error) {
	n, err := ParseNumber(query)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q is not a JD number", ErrNotFound, strings.TrimSpace(query))
	}
	return n, nil
}

// ParseFolderName parses a folder name against the grammar of the expected
// level. It returns ok=false when the name has no well-formed prefix for that
// level; that is not an error.
//
// e.g. ParseFolderName(LevelID, "11.04 Taxes") -> 11.04, "Taxes", true
func ParseFolderName(level Level, name string) (Number, string, bool) {
	var (
		n     Number
		err   error
		sep   string
		label string
	)

	switch level {
	case LevelArea:
		m := areaFolderRegex.FindStringSubmatch(name)
		if m == nil {
			return Number{}, "", false
		}
		n, err = parseAreaRange(m[1], m[2])
		sep, label = m[3], m[4]
	case LevelCategory:
		m := categoryFolderRegex.FindStringSubmatch(name)
		if m == nil {
			return Number{}, "", false
		}
		n, err = NewCategory(atoi(m[1]))
		sep, label = m[2], m[3]
	case LevelID:
		m := idFolderRegex.FindStringSubmatch(name)
		if m == nil {
			return Number{}, "", false
		}
		n, err = NewID(atoi(m[1]), atoi(m[2]))
		sep, label = m[3], m[4]
	default:
		return Number{}, "", false
	}

	if err != nil {
		return Number{}, "", false
	}

	// "11.04 x" must not read as category 11 labelled "04 x", nor "10-19 x" as category 10
	if (sep == "." || sep == "-") && startsWithDigit(label) {
		return Number{}, "", false
	}

	return n, label, true
}

// FormatFolderName is the left inverse of ParseFolderName for valid labels
func FormatFolderName(n Number, label string) string {
	return n.String() + " " + label
}

// ValidLabel reports whether label can be used as the text part of a folder name
func ValidLabel(label string) bool {
	if label == "" || label == "." || label == ".." {
		return false
	}
	return utf8.ValidString(label) && !strings.ContainsAny(label, "/\\\x00\r\n")
}

// CheckLabel returns ErrInvalidLabel with a reason when label is unusable
func CheckLabel(label string) error {
	if !ValidLabel(label) {
		return fmt.Errorf("%w: %q (must be non-empty UTF-8 with no path separators or line breaks)", ErrInvalidLabel, label)
	}
	return nil
}

func parseAreaRange(first, last string) (Number, error) {
	start, end := atoi(first), atoi(last)
	if end != start+9 {
		return Number{}, fmt.Errorf("invalid area range %s-%s: must span ten categories", first, last)
	}
	return NewArea(start)
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// atoi is only used on regex captures of two ASCII digits
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
