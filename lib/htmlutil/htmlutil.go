package htmlutil

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// collapses whitespace runs to single spaces and trims the edges
func CollapseSpace(s string) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}

// joins every text node under the node with single spaces, the way a
// rendered page would read. empty text nodes are skipped.
func FlattenText(node *html.Node) string {
	var parts []string
	flattenTextRecursive(node, &parts)
	return strings.Join(parts, " ")
}

func flattenTextRecursive(node *html.Node, parts *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		text := CollapseSpace(node.Data)
		if text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	child := node.FirstChild
	for child != nil {
		flattenTextRecursive(child, parts)
		child = child.NextSibling
	}
}

// Table is the cell matrix of one <table> element. HeaderRows holds the
// leading all-<th> rows (several when the header is hierarchical),
// Rows holds everything else in document order.
type Table struct {
	HeaderRows [][]string
	Rows       [][]string
}

// extracts the cell text matrix of the first <table> in the selection.
// colspan'd cells are repeated so every row has its full width.
func ExtractTable(sel *goquery.Selection) Table {
	var out Table
	inHeader := true

	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		thCount := 0
		tdCount := 0

		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			if cell.Is("th") {
				thCount++
			} else {
				tdCount++
			}
			text := CollapseSpace(GetText(cell.Nodes[0]))

			span := 1
			if v, ok := cell.Attr("colspan"); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 1 {
					span = n
				}
			}
			for i := 0; i < span; i++ {
				cells = append(cells, text)
			}
		})

		if len(cells) == 0 {
			return
		}
		if inHeader && thCount > 0 && tdCount == 0 {
			out.HeaderRows = append(out.HeaderRows, cells)
			return
		}
		inHeader = false
		out.Rows = append(out.Rows, cells)
	})

	return out
}
