package diag

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

type collector struct {
	warnings []Warning
}

func (c *collector) Report(w Warning) {
	c.warnings = append(c.warnings, w)
}

func TestSweepReportsEveryMatch(t *testing.T) {
	re := regexp.MustCompile(`bad\d`)
	text := "bad1 ok bad2 ok bad3"

	c := &collector{}
	found := Sweep(text, re, "malformed call", "a.m", c)

	assert.Len(t, found, 3)
	assert.Len(t, c.warnings, 3)
	assert.Equal(t, "bad2", c.warnings[1].Match)
	assert.Equal(t, "malformed call", c.warnings[1].Message)
	assert.Equal(t, "a.m", c.warnings[1].Path)
}

func TestSweepNoMatches(t *testing.T) {
	re := regexp.MustCompile(`nope`)

	c := &collector{}
	found := Sweep("all good here", re, "msg", "a.m", c)

	assert.Empty(t, found)
	assert.Empty(t, c.warnings)
}

// Sweeps over the same text are independent; one never advances another's
// cursor.
func TestSweepsIndependent(t *testing.T) {
	text := "x y x y"
	reX := regexp.MustCompile(`x`)
	reY := regexp.MustCompile(`y`)

	c := &collector{}
	xs := Sweep(text, reX, "x found", "f.m", c)
	ys := Sweep(text, reY, "y found", "f.m", c)

	assert.Len(t, xs, 2)
	assert.Len(t, ys, 2)
	assert.Len(t, c.warnings, 4)
}

func TestSweepNilReporter(t *testing.T) {
	found := Sweep("bad", regexp.MustCompile(`bad`), "msg", "a.m", nil)
	assert.Len(t, found, 1)
}
