// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	ConfigLoadFailedId Id = iota + 1
	InputClosedId
	PackageRejectedId
	UnexpectedFailureId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // documentation pages for this issue
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render returns the issue as terminal-formatted Markdown. stylePath is any
// glamour style name ("dark", "light", "notty") or a path to a style file.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

shipcalc could not read or validate its configuration.

## Where settings come from (later wins):
1. Built-in defaults
2. ~/.config/shipcalc/config.cue, or ./config.cue, or the --config path
3. A .env file (or the --env-file path)
4. SHIPCALC_* environment variables
5. Command-line flags

## Things you can try:
- Print the configuration shipcalc would use:
~~~
$ shipcalc config dump
~~~
- Write a fresh default file:
~~~
$ shipcalc config init
~~~

## Example configuration:
~~~cue
limits: {
	max_weight:     50
	max_total_size: 50
}
session: on_reject: "retry"
~~~`,
	}

	inputClosedIssue = &Issue{
		id: InputClosedId,
		mdMsg: `
# Input ended before the estimate was complete!

shipcalc reads one answer per line. The input stream was closed before
every question was answered.

## Things you can try:
- Answer the four questions (weight, width, height, length) interactively
- When piping answers, put each one on its own line:
~~~
$ printf '10\n2\n2\n2\n' | shipcalc
~~~
- Use the non-interactive command instead:
~~~
$ shipcalc quote --weight 10 --width 2 --height 2 --length 2
~~~`,
	}

	packageRejectedIssue = &Issue{
		id: PackageRejectedId,
		mdMsg: `
# Package rejected!

The package exceeds a Package Express limit.

## Limits:
- **weight**: at most ` + "`limits.max_weight`" + ` (default 50)
- **size**: width + height + length at most ` + "`limits.max_total_size`" + ` (default 50)

## Things you can try:
- Split the shipment into smaller packages
- Run with ` + "`--on-reject retry`" + ` to correct the values instead of stopping`,
	}

	unexpectedFailureIssue = &Issue{
		id: UnexpectedFailureId,
		mdMsg: `
# Something went wrong!

The estimate stopped because of an unexpected failure.

## Things you can try:
- Run again with ` + "`--verbose`" + ` to see the full error chain and debug log`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		inputClosedIssue.Id():       inputClosedIssue,
		packageRejectedIssue.Id():   packageRejectedIssue,
		unexpectedFailureIssue.Id(): unexpectedFailureIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
