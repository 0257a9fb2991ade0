package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
)

// Markdown renders the minutes with one section per facet.
func Markdown(res *pipeline.Result, includeTranscript bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title(res))
	fmt.Fprintf(&b, "_%s_\n\n", subtitle(res))

	for _, facet := range summarizer.Facets {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", facet.Title, strings.TrimSpace(facet.Get(res.Minutes)))
	}

	if includeTranscript {
		fmt.Fprintf(&b, "## Transcript\n\n%s\n", strings.TrimSpace(res.Transcript))
	}
	return b.String()
}

func title(res *pipeline.Result) string {
	return "Meeting Minutes: " + BaseName(res.Filename)
}

func subtitle(res *pipeline.Result) string {
	return fmt.Sprintf("%s | run %s | %d part(s) | %s",
		time.Now().Format("2006-01-02 15:04"), res.RunID, len(res.Parts), res.Elapsed.Round(time.Second))
}
