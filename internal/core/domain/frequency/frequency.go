/*
Package frequency defines the core domain entities for digit frequency counting.
*/
package frequency

import "strconv"

// DigitCount is the number of decimal digits tracked by a Table.
const DigitCount = 10

// BadSymbolsLabel labels the count of non-digit characters in a report.
const BadSymbolsLabel = "bad symbols"

/*
Table holds one counter per decimal digit, indexed by digit value.
This is a core domain entity.
*/
type Table [DigitCount]int

/*
Tally accumulates the digit counts and the count of every other character
seen during a scan. The zero value is an empty tally ready for use.
*/
type Tally struct {
	Digits Table
	Other  int
}

// Entry is one labelled line of a report.
type Entry struct {
	Symbol string `yaml:"symbol"`
	Count  int    `yaml:"count"`
}

// DigitValue returns the value of r if it is an ASCII decimal digit.
func DigitValue(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// AddRune classifies a single character.
func (t *Tally) AddRune(r rune) {
	if d, ok := DigitValue(r); ok {
		t.Digits[d]++
		return
	}
	t.Other++
}

// AddLine classifies every character of line, including any line terminator it carries.
// Invalid UTF-8 bytes are counted as one other character each.
func (t *Tally) AddLine(line string) {
	for _, r := range line {
		t.AddRune(r)
	}
}

// Total returns the number of characters classified so far.
func (t Tally) Total() int {
	total := t.Other
	for _, n := range t.Digits {
		total += n
	}
	return total
}

// Entries returns the ten digit entries in ascending order followed by the bad symbols entry.
func (t Tally) Entries() []Entry {
	entries := make([]Entry, 0, DigitCount+1)
	for d, n := range t.Digits {
		entries = append(entries, Entry{Symbol: strconv.Itoa(d), Count: n})
	}
	return append(entries, Entry{Symbol: BadSymbolsLabel, Count: t.Other})
}

/*
Report is an immutable snapshot of a completed scan.
Source names the input the tally was taken from.
*/
type Report struct {
	Source string
	Tally  Tally
}

// Entries returns the report lines in output order.
func (r Report) Entries() []Entry {
	return r.Tally.Entries()
}

// Total returns the number of characters scanned.
func (r Report) Total() int {
	return r.Tally.Total()
}
