// Package completion provides shell completion of catalog titles.
package completion

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/pkg/movies"
)

// ClientProvider supplies the catalog client completions read from.
type ClientProvider interface {
	Client() (marquee.Client, error)
}

// Titles returns a cobra ValidArgsFunction completing the first positional
// argument with catalog titles ranked against what has been typed.
func Titles(app ClientProvider) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		client, err := app.Client()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		ms, err := client.List()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return Rank(ms, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// Rank returns the titles of ms that fuzzily match prefix, best first.
// An empty prefix returns every title in catalog order.
func Rank(ms []movies.Movie, prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return movies.Titles(ms)
	}

	matches := fuzzy.FindFrom(prefix, titleSource(ms))
	titles := make([]string, len(matches))
	for i, m := range matches {
		titles[i] = ms[m.Index].Title
	}
	return titles
}

// titleSource implements fuzzy.Source over movie titles.
type titleSource []movies.Movie

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }
