package utils

import (
	"strings"
	"testing"
	"time"
)

func TestParseID(t *testing.T) {
	cases := map[string]struct {
		id int
		ok bool
	}{
		"1":   {1, true},
		"42":  {42, true},
		"0":   {0, false},
		"-3":  {-3, false},
		"abc": {0, false},
		"":    {0, false},
	}
	for in, want := range cases {
		id, ok := ParseID(in)
		if id != want.id || ok != want.ok {
			t.Errorf("ParseID(%q) = %d, %v; want %d, %v", in, id, ok, want.id, want.ok)
		}
	}
}

func TestHotScoreFavoursEngagementAndRecency(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	if got := HotScore(now, 0, 0, now); got != 0 {
		t.Errorf("Expected zero score without engagement, got %f", got)
	}
	popular := HotScore(now.Add(-time.Hour), 50, 5, now)
	quiet := HotScore(now.Add(-time.Hour), 1, 0, now)
	if popular <= quiet {
		t.Errorf("Expected popular (%f) > quiet (%f)", popular, quiet)
	}
	fresh := HotScore(now.Add(-time.Hour), 10, 0, now)
	stale := HotScore(now.Add(-48*time.Hour), 10, 0, now)
	if fresh <= stale {
		t.Errorf("Expected fresh (%f) > stale (%f)", fresh, stale)
	}
	future := HotScore(now.Add(time.Hour), 10, 0, now)
	if future != HotScore(now, 10, 0, now) {
		t.Errorf("Expected future timestamps to clamp to now")
	}
}

func TestRenderMarkdownSanitises(t *testing.T) {
	out := string(RenderMarkdown("# Title\n\nHello <script>alert(1)</script> **world**"))
	if strings.Contains(out, "<script>") {
		t.Errorf("Expected script to be stripped, got %s", out)
	}
	if !strings.Contains(out, "<strong>world</strong>") {
		t.Errorf("Expected emphasis to render, got %s", out)
	}
}

func TestRenderMarkdownEnhancesImagesAndLinks(t *testing.T) {
	out := string(RenderMarkdown("![cover](https://example.com/c.png) see [site](https://example.com)"))
	if !strings.Contains(out, `loading="lazy"`) {
		t.Errorf("Expected lazy image, got %s", out)
	}
	if !strings.Contains(out, `target="_blank"`) {
		t.Errorf("Expected external link to open in new tab, got %s", out)
	}
}

func TestEnhanceHTMLContentEmpty(t *testing.T) {
	if got := EnhanceHTMLContent(""); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

func TestRenderCacheReusesEntries(t *testing.T) {
	c, err := NewRenderCache(2)
	if err != nil {
		t.Fatal(err)
	}
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := c.Render(1, created, "hello")
	second := c.Render(1, created, "ignored because cached")
	if first != second {
		t.Errorf("Expected cached render, got %q then %q", first, second)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}

	// Same id, different creation time is a different novel.
	other := c.Render(1, created.Add(time.Second), "other")
	if other == first {
		t.Error("Expected a distinct render for a different creation time")
	}
}
