package report

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*•]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+[.)]\s+(.+)$`)
)

// minutesToDocx writes one heading per facet followed by the facet text,
// which models often return as light markdown.
func minutesToDocx(res *pipeline.Result, includeTranscript bool, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title(res), true, 16)
	addStyledRun(doc.AddParagraph(""), subtitle(res), false, 11)

	for _, facet := range summarizer.Facets {
		addStyledRun(doc.AddParagraph(""), facet.Title, true, headingSize(2))
		addMarkdown(doc.AddParagraph, facet.Get(res.Minutes))
	}

	if includeTranscript {
		addStyledRun(doc.AddParagraph(""), "Transcript", true, headingSize(2))
		for _, para := range strings.Split(res.Transcript, "\n") {
			if para = strings.TrimSpace(para); para != "" {
				doc.AddParagraph("").AddText(para).Font(fontName).Size(fontSize).Color("000000")
			}
		}
	}

	return doc.SaveTo(outputPath)
}

func addMarkdown(addParagraph func(string) *docx.Paragraph, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			// Facet titles are level 2, so nested headings start at 3.
			addStyledRun(addParagraph(""), m[2], true, headingSize(len(m[1])+1))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(addParagraph(""), "• "+m[1])
			continue
		}

		if reNumbered.MatchString(trimmed) {
			addRichText(addParagraph(""), trimmed)
			continue
		}

		addRichText(addParagraph(""), trimmed)
	}
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
