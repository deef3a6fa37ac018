package schedule

import (
	"fmt"
	"strings"
)

// DefaultTemplate is the published location of the test80 training archives.
const DefaultTemplate = "https://storage.lczero.org/files/training_data/test80/training-run1-test80-{date}-{hour}17.tar"

// Template renders archive URLs by substituting {date} and {hour}
// placeholders. {date} becomes the year followed by zero-padded 2-digit
// month and day; {hour} becomes the zero-padded 2-digit hour.
type Template string

// ParseTemplate validates that s contains both placeholders.
func ParseTemplate(s string) (Template, error) {
	for _, placeholder := range []string{"{date}", "{hour}"} {
		if !strings.Contains(s, placeholder) {
			return "", fmt.Errorf("template is missing the %s placeholder", placeholder)
		}
	}
	return Template(s), nil
}

// Render produces the URL for one hour of one day of the period.
func (t Template) Render(p Period, dh DayHour) string {
	r := strings.NewReplacer(
		"{date}", fmt.Sprintf("%d%02d%02d", p.Year, p.Month, dh.Day),
		"{hour}", fmt.Sprintf("%02d", dh.Hour),
	)
	return r.Replace(string(t))
}

// URLs returns every archive URL for the period in chronological order.
// The result always holds exactly p.Days()*24 entries.
func (t Template) URLs(p Period) []string {
	hours := p.Hours()
	urls := make([]string, 0, len(hours))
	for _, dh := range hours {
		urls = append(urls, t.Render(p, dh))
	}
	return urls
}
