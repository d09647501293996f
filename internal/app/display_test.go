package app

import (
	"testing"

	"github.com/relabs-tech/weather_companion/internal/forecast"
)

func TestGlyphsCoverForecastIcons(t *testing.T) {
	// Every icon the table can hand the display must have a glyph.
	for code := forecast.MinCode; code <= forecast.MaxCode; code++ {
		entry, err := forecast.Lookup(code)
		if err != nil {
			continue // the table gap
		}
		name := entry.Icon.String()
		rows, ok := glyphs[name]
		if !ok {
			t.Errorf("no glyph for icon %q (code %d)", name, code)
			continue
		}
		for i, row := range rows {
			if len(row) != 24 {
				t.Errorf("glyph %q row %d has width %d; want 24", name, i, len(row))
			}
		}
		if len(rows) != 24 {
			t.Errorf("glyph %q has %d rows; want 24", name, len(rows))
		}
	}
}

func TestMarqueeShortTextDoesNotScroll(t *testing.T) {
	m := &marquee{}
	for i := 0; i < 10; i++ {
		if off := m.advance("Fine"); off != 0 {
			t.Fatalf("advance(short text) offset = %d; want 0", off)
		}
	}
}

func TestMarqueeScrollsAndWraps(t *testing.T) {
	m := &marquee{}
	text := "Fairly fine, possible showers early" // wider than the panel

	if off := m.advance(text); off != 0 {
		t.Fatalf("first advance offset = %d; want 0", off)
	}

	span := len(text)*charW + marqueeGap
	prev := 0
	wrapped := false
	for i := 0; i < span; i++ {
		off := m.advance(text)
		if off >= span {
			t.Fatalf("offset %d out of range [0, %d)", off, span)
		}
		if off < prev {
			wrapped = true
		}
		prev = off
	}
	if !wrapped {
		t.Error("marquee never wrapped around")
	}
}

func TestMarqueeResetsOnNewText(t *testing.T) {
	m := &marquee{}
	long := "Rain at frequent intervals and more rain"
	m.advance(long)
	m.advance(long)
	m.advance(long)

	if off := m.advance("Unsettled, rain later"); off != 0 {
		t.Errorf("advance(new text) offset = %d; want 0 (reset)", off)
	}
}
