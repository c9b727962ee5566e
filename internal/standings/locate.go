package standings

import (
	"fmt"
	"strings"

	"almanac-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var ErrTableNotFound = fmt.Errorf("standings table not found")

// Rubric holds the weights used to score candidate tables when no
// heading shortcut matches. Source-format drift is expected, so the
// weights are a value rather than constants baked into the scorer.
type Rubric struct {
	Standings int
	Wins      int
	Losses    int
	WinPct    int
}

func DefaultRubric() Rubric {
	return Rubric{Standings: 2, Wins: 2, Losses: 2, WinPct: 1}
}

// Score rates the flattened, lowercased text of one table. The wins and
// losses markers must be isolated words, a bare "w" inside a team name
// does not count.
func (r Rubric) Score(text string) int {
	// pad so word-boundary checks hold at the string edges
	text = " " + strings.ToLower(text) + " "

	score := 0
	if strings.Contains(text, "standings") {
		score += r.Standings
	}
	if strings.Contains(text, " wins ") || strings.Contains(text, " w ") {
		score += r.Wins
	}
	if strings.Contains(text, " losses ") || strings.Contains(text, " l ") {
		score += r.Losses
	}
	if strings.Contains(text, " pct") || strings.Contains(text, " w-l%") ||
		strings.Contains(text, " win%") || strings.Contains(text, " wp ") {
		score += r.WinPct
	}
	return score
}

// Locator picks the standings table out of a parsed document.
type Locator struct {
	// case-insensitive phrase searched for in heading-like elements;
	// the first table after a match is trusted outright
	HeadingMarker string
	Rubric        Rubric
}

func DefaultLocator() Locator {
	return Locator{
		HeadingMarker: "team standings",
		Rubric:        DefaultRubric(),
	}
}

// Locate returns the best candidate table in the document. The heading
// shortcut wins when present; otherwise every table is scored with the
// rubric and the maximum (first in document order on ties) is taken.
// Returns ErrTableNotFound when the document has no tables at all.
func (l Locator) Locate(doc *goquery.Document) (*goquery.Selection, error) {
	var markerNode *html.Node
	doc.Find("h1, h2, h3, b, strong").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(htmlutil.CollapseSpace(htmlutil.GetText(s.Nodes[0])))
		if strings.Contains(text, l.HeadingMarker) {
			markerNode = s.Nodes[0]
			return false
		}
		return true
	})
	if markerNode != nil {
		if t := firstTableAfter(doc, markerNode); t != nil {
			return t, nil
		}
	}

	var best *goquery.Selection
	bestScore := -1
	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		score := l.Rubric.Score(htmlutil.FlattenText(t.Nodes[0]))
		if score > bestScore {
			best = t
			bestScore = score
		}
	})
	if best == nil {
		return nil, ErrTableNotFound
	}
	return best, nil
}

// walks the document in order and returns the first table that occurs
// after the marker node, matching how a reader scans past a heading
func firstTableAfter(doc *goquery.Document, marker *html.Node) *goquery.Selection {
	var found *html.Node
	passed := false

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n == nil || found != nil {
			return
		}
		if n == marker {
			passed = true
		} else if passed && n.Type == html.ElementNode && n.Data == "table" {
			found = n
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, root := range doc.Selection.Nodes {
		walk(root)
	}

	if found == nil {
		return nil
	}
	return goquery.NewDocumentFromNode(found).Selection
}
