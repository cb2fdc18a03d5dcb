package matcher_test

import (
	"testing"

	"github.com/arthur-debert/tpick/pkg/config"
	"github.com/arthur-debert/tpick/pkg/matcher"
	"github.com/arthur-debert/tpick/pkg/selection"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlPattern() config.Pattern {
	return config.Pattern{Name: "URL", Regex: `https?://\S+`, Action: "open_url", Enabled: true}
}

func filePattern() config.Pattern {
	return config.Pattern{Name: "FILE", Regex: `([a-zA-Z0-9_/.-]+\.(py|js|md))`, Action: "open_file", Enabled: true}
}

func TestScan_ReverseOrder(t *testing.T) {
	m := matcher.New([]config.Pattern{urlPattern()})

	got := m.Scan("Check out https://example.com and http://test.org")

	assert.Equal(t, []string{
		"http://test.org\tURL",
		"https://example.com\tURL",
	}, got)
}

func TestScan_Dedup(t *testing.T) {
	m := matcher.New([]config.Pattern{urlPattern()})

	t.Run("identical values collapse", func(t *testing.T) {
		got := m.Scan("https://example.com and https://example.com again")
		assert.Equal(t, []string{"https://example.com\tURL"}, got)
	})

	t.Run("rightmost occurrence is kept", func(t *testing.T) {
		text := "https://a.com https://b.com https://a.com"
		mentions := m.Mentions(text)
		require.Len(t, mentions, 2)
		assert.Equal(t, "https://a.com", mentions[0].Value)
		assert.Equal(t, 28, mentions[0].Position)
		assert.Equal(t, "https://b.com", mentions[1].Value)
	})

	t.Run("same value different type is kept", func(t *testing.T) {
		m := matcher.New([]config.Pattern{
			{Name: "WORD", Regex: `\w+`, Enabled: true},
			{Name: "NAME", Regex: `\w+`, Enabled: true},
		})
		assert.Equal(t, []string{"hello\tWORD", "hello\tNAME"}, m.Scan("hello"))
	})
}

func TestScan_CaptureGroup(t *testing.T) {
	m := matcher.New([]config.Pattern{filePattern()})

	assert.Equal(t, []string{"src/main.py\tFILE"}, m.Scan("Check out src/main.py"))

	t.Run("match position not group position", func(t *testing.T) {
		m := matcher.New([]config.Pattern{{Name: "ISSUE", Regex: `#(\d+)`, Enabled: true}})
		mentions := m.Mentions("fix #12 and #7")
		require.Len(t, mentions, 2)
		assert.Equal(t, "7", mentions[0].Value)
		assert.Equal(t, 12, mentions[0].Position)
		assert.Equal(t, "12", mentions[1].Value)
		assert.Equal(t, 4, mentions[1].Position)
	})

	t.Run("empty group is discarded", func(t *testing.T) {
		m := matcher.New([]config.Pattern{{Name: "KEY", Regex: `key=(\w*)`, Enabled: true}})
		assert.Equal(t, []string{"b\tKEY"}, m.Scan("key= key=b"))
	})

	t.Run("non participating group is discarded", func(t *testing.T) {
		m := matcher.New([]config.Pattern{{Name: "OPT", Regex: `x(y)?`, Enabled: true}})
		assert.Equal(t, []string{"y\tOPT"}, m.Scan("x xy"))
	})
}

func TestScan_EmptyWholeMatchDiscarded(t *testing.T) {
	m := matcher.New([]config.Pattern{{Name: "DIGITS", Regex: `\d*`, Enabled: true}})
	assert.Equal(t, []string{"42\tDIGITS"}, m.Scan("a42b"))
}

func TestScan_DisabledPattern(t *testing.T) {
	disabled := urlPattern()
	disabled.Enabled = false

	m := matcher.New([]config.Pattern{disabled})
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Scan("https://example.com"))
}

func TestScan_InvalidRegexSkipped(t *testing.T) {
	m := matcher.New([]config.Pattern{
		{Name: "BROKEN", Regex: `([a-z`, Enabled: true},
		urlPattern(),
	})

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"https://example.com\tURL"}, m.Scan("see https://example.com"))
}

func TestScan_SamePositionKeepsConfigOrder(t *testing.T) {
	m := matcher.New([]config.Pattern{
		urlPattern(),
		{Name: "HOST", Regex: `https?://([^/\s]+)`, Enabled: true},
	})

	got := m.Scan("https://example.com/path")
	assert.Equal(t, []string{
		"https://example.com/path\tURL",
		"example.com\tHOST",
	}, got)
}

func TestScan_EmptyInputs(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		m := matcher.New([]config.Pattern{urlPattern()})
		assert.Empty(t, m.Scan(""))
	})

	t.Run("no patterns", func(t *testing.T) {
		m := matcher.New(nil)
		assert.Empty(t, m.Scan("https://example.com"))
	})
}

func TestScan_Idempotent(t *testing.T) {
	m := matcher.New([]config.Pattern{urlPattern(), filePattern()})
	text := "edit README.md then https://x.io/a.js and lib/util.js, README.md again"

	first := m.Scan(text)
	second := m.Scan(text)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestScanWithConfig(t *testing.T) {
	cfg := &config.Config{
		Patterns: []config.Pattern{urlPattern(), filePattern()},
		Actions:  map[string]config.Action{},
	}

	got := matcher.Scan("open main.py and https://example.com", cfg)
	assert.Equal(t, []string{
		"https://example.com\tURL",
		"main.py\tFILE",
	}, got)
}

func TestMentions_Records(t *testing.T) {
	m := matcher.New([]config.Pattern{urlPattern(), filePattern()})

	got := m.Mentions("see docs/a.md, then https://x.io and docs/a.md")
	want := []matcher.Mention{
		{Selection: selection.Selection{Type: "FILE", Value: "docs/a.md"}, Position: 37},
		{Selection: selection.Selection{Type: "URL", Value: "https://x.io"}, Position: 20},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Mentions() mismatch (-want +got):\n%s", diff)
	}
}
