package notifier

import (
	"fmt"
	"strings"
)

// FormatAlert renders the Telegram message for an alert in Markdown.
// When the thread's ad fields could not be parsed, the message degrades to
// the listing title and link.
func FormatAlert(alert Alert) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Uusi %s myynnissä:*\n\n", alert.Listing.Category)

	if alert.Details != nil {
		model := alert.Details.Model
		if model == "" {
			model = alert.Listing.Title
		}
		fmt.Fprintf(&b, "\U0001f579 *Tuote:* %s\n", model)
		fmt.Fprintf(&b, "\U0001f4b5 *Hinta:* %s\n", alert.Details.Price)
		fmt.Fprintf(&b, "\U0001f4c6 *Ostettu:* %s\n", alert.Details.Bought)
		fmt.Fprintf(&b, "\U0001f9fe *Kuitti, takuu:* %s\n", alert.Details.Warranty)
	} else {
		fmt.Fprintf(&b, "\U0001f579 *Tuote:* %s\n", alert.Listing.Title)
	}

	fmt.Fprintf(&b, "\U0001f4ce *Linkki:* [Tässä](%s)\n", alert.Listing.URL)

	return b.String()
}
