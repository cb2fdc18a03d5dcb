package matcher

import (
	"regexp"
	"sort"

	"github.com/arthur-debert/tpick/pkg/config"
	"github.com/arthur-debert/tpick/pkg/logging"
	"github.com/arthur-debert/tpick/pkg/selection"
	"github.com/rs/zerolog"
)

// Mention is one matched occurrence of a pattern
type Mention struct {
	selection.Selection

	// Position is the byte offset of the match start in the scanned text
	Position int
}

type compiledPattern struct {
	name string
	re   *regexp.Regexp
}

// Matcher scans text with a fixed set of compiled patterns
type Matcher struct {
	patterns []compiledPattern
	logger   zerolog.Logger
}

// New compiles the enabled patterns. Disabled patterns and patterns whose
// regex fails to compile are left out.
func New(patterns []config.Pattern) *Matcher {
	m := &Matcher{
		logger: logging.GetLogger("matcher"),
	}

	for _, p := range patterns {
		if !p.Enabled {
			m.logger.Trace().Str("pattern", p.Name).Msg("Skipping disabled pattern")
			continue
		}

		re, err := regexp.Compile(p.Regex)
		if err != nil {
			m.logger.Debug().
				Err(err).
				Str("pattern", p.Name).
				Str("regex", p.Regex).
				Msg("Skipping pattern with invalid regex")
			continue
		}

		m.patterns = append(m.patterns, compiledPattern{name: p.Name, re: re})
	}

	return m
}

// Len returns the number of usable patterns
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// Mentions returns the deduplicated mentions in text, rightmost first
func (m *Matcher) Mentions(text string) []Mention {
	done := logging.LogOperationStart(m.logger, "scan")
	defer done()

	var all []Mention
	for _, p := range m.patterns {
		all = append(all, findAll(p, text)...)
	}

	// Stable keeps configuration order for mentions at the same position
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Position > all[j].Position
	})

	seen := make(map[selection.Selection]bool, len(all))
	results := make([]Mention, 0, len(all))
	for _, mention := range all {
		if seen[mention.Selection] {
			continue
		}
		seen[mention.Selection] = true
		results = append(results, mention)
	}

	m.logger.Debug().
		Int("matches", len(all)).
		Int("unique", len(results)).
		Msg("Scan completed")

	return results
}

// Scan returns the mentions in text encoded as selection tokens
func (m *Matcher) Scan(text string) []string {
	mentions := m.Mentions(text)
	tokens := make([]string, 0, len(mentions))
	for _, mention := range mentions {
		tokens = append(tokens, mention.Encode())
	}
	return tokens
}

// Scan compiles the configured patterns and scans text in one call
func Scan(text string, cfg *config.Config) []string {
	return New(cfg.Patterns).Scan(text)
}

func findAll(p compiledPattern, text string) []Mention {
	var mentions []Mention
	hasGroup := p.re.NumSubexp() > 0

	for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		if hasGroup {
			// loc[2] is -1 when group 1 did not participate
			start, end = loc[2], loc[3]
		}
		if start < 0 || start == end {
			continue
		}

		mentions = append(mentions, Mention{
			Selection: selection.Selection{Type: p.name, Value: text[start:end]},
			Position:  loc[0],
		})
	}

	return mentions
}
