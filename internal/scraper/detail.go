package scraper

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ParseDetails parses the structured ad fields from a thread page. Sellers
// fill a template whose first post lists model, price, purchase date and
// warranty as bold labels followed by the value. Returns nil when the post
// structure is not recognized.
func ParseDetails(r io.Reader) (*ListingDetails, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	wrapper := doc.Find("div.bbWrapper").First()
	if wrapper.Length() == 0 {
		return nil, nil
	}

	details := &ListingDetails{}
	wrapper.Find("b").EachWithBreak(func(i int, b *goquery.Selection) bool {
		if i > 3 {
			return false
		}
		value := labelValue(b)
		switch i {
		case 0:
			details.Model = value
		case 1:
			details.Price = value
		case 2:
			details.Bought = value
		case 3:
			details.Warranty = value
		}
		return true
	})

	return details, nil
}

// labelValue returns the text immediately following a bold label,
// stripped of the label separator.
func labelValue(b *goquery.Selection) string {
	node := b.Get(0)
	sibling := node.NextSibling
	if sibling == nil || sibling.Type != html.TextNode {
		return ""
	}
	value := strings.TrimSpace(sibling.Data)
	value = strings.TrimPrefix(value, ":")
	return strings.TrimSpace(value)
}
