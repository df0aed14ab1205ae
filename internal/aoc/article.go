package aoc

import (
	"bytes"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
	multiSpacePattern   = regexp.MustCompile(`[ \t]{2,}`)
	titlePattern        = regexp.MustCompile(`^-*\s*Day\s+(\d+):\s*(.*?)\s*-*$`)
)

// Puzzle is what ParseArticle extracts from a day page.
type Puzzle struct {
	Day      int
	Title    string
	Markdown string   // description of every visible part
	Samples  []string // <pre><code> blocks, verbatim
	Answers  []string // answers already accepted by the site
}

// FirstSample returns the first example block, usually the sample input.
func (p *Puzzle) FirstSample() (string, bool) {
	if len(p.Samples) == 0 {
		return "", false
	}
	return p.Samples[0], true
}

// ParseArticle extracts the puzzle from a day page.
func ParseArticle(htmlContent string) (*Puzzle, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse puzzle page: %w", err)
	}

	var articles, paragraphs []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "article" && hasClass(n, "day-desc"):
				articles = append(articles, n)
				return
			case n.Data == "p":
				paragraphs = append(paragraphs, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(articles) == 0 {
		return nil, ErrNoArticle
	}

	p := &Puzzle{}
	var buf bytes.Buffer
	for _, a := range articles {
		extractText(a, &buf, 0)
		collectSamples(a, &p.Samples)
	}
	p.Markdown = cleanMarkdown(buf.String())

	if h2 := findFirst(articles[0], "h2"); h2 != nil {
		heading := strings.TrimSpace(textContent(h2))
		if m := titlePattern.FindStringSubmatch(heading); m != nil {
			p.Day, _ = strconv.Atoi(m[1])
			p.Title = m[2]
		} else {
			p.Title = strings.Trim(heading, "- ")
		}
	}

	for _, para := range paragraphs {
		if !strings.HasPrefix(textContent(para), "Your puzzle answer was") {
			continue
		}
		if code := findFirst(para, "code"); code != nil {
			p.Answers = append(p.Answers, textContent(code))
		}
	}
	return p, nil
}

func collectSamples(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode && n.Data == "pre" {
		if code := findFirst(n, "code"); code != nil {
			*out = append(*out, textContent(code))
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectSamples(c, out)
	}
}

func extractText(n *html.Node, sb *bytes.Buffer, depth int) {
	if depth > 50 {
		return
	}

	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return
		case "h2":
			sb.WriteString("\n\n## ")
			sb.WriteString(strings.Trim(strings.TrimSpace(textContent(n)), "- "))
			sb.WriteString("\n\n")
			return
		case "pre":
			// kept verbatim; samples are whitespace sensitive
			sb.WriteString("\n\n```\n")
			sb.WriteString(textContent(n))
			sb.WriteString("\n```\n\n")
			return
		case "p":
			sb.WriteString("\n\n")
		case "br":
			sb.WriteString("\n")
		case "li":
			sb.WriteString("\n- ")
		case "code":
			sb.WriteString("`")
		case "em", "strong", "b":
			sb.WriteString("**")
		case "a":
			if href := getAttr(n, "href"); href != "" && !strings.HasPrefix(href, "#") {
				sb.WriteString("[")
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, sb, depth+1)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "code", "em", "strong", "b", "a":
			trimTrailingSpace(sb)
		}
		switch n.Data {
		case "code":
			sb.WriteString("` ")
		case "em", "strong", "b":
			sb.WriteString("** ")
		case "a":
			if href := getAttr(n, "href"); href != "" && !strings.HasPrefix(href, "#") {
				sb.WriteString(fmt.Sprintf("](%s) ", href))
			}
		}
	}
}

func trimTrailingSpace(buf *bytes.Buffer) {
	for buf.Len() > 0 && buf.Bytes()[buf.Len()-1] == ' ' {
		buf.Truncate(buf.Len() - 1)
	}
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(getAttr(n, "class")), class)
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// cleanMarkdown removes excessive whitespace outside fenced code blocks.
func cleanMarkdown(s string) string {
	lines := strings.Split(s, "\n")
	inFence := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			lines[i] = "```"
			continue
		}
		if inFence {
			continue
		}
		line = multiSpacePattern.ReplaceAllString(line, " ")
		line = strings.ReplaceAll(line, " .", ".")
		line = strings.ReplaceAll(line, " ,", ",")
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = multiNewlinePattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
