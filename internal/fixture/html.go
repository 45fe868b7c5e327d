package fixture

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// parseHTML reads a catalog exported as
//
//	<table class="catalog">
//	  <tr class="item"><td class="id">1</td><td class="title">…</td>…</tr>
//	</table>
//
// with one cell per Record field, named by its class. Thumbnail and link
// cells may wrap an <img src> or <a href>.
func parseHTML(data []byte) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	table := doc.Find("table.catalog")
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table.catalog element found")
	}

	var (
		records  []Record
		parseErr error
	)

	table.Find("tr.item").EachWithBreak(func(i int, row *goquery.Selection) bool {
		record, err := parseRow(row)
		if err != nil {
			parseErr = fmt.Errorf("row %d: %w", i+1, err)
			return false
		}
		records = append(records, record)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	log.Debugf("Parsed %d items from HTML fixture", len(records))
	return records, nil
}

func parseRow(row *goquery.Selection) (Record, error) {
	var (
		r   Record
		err error
	)

	if r.ID, err = strconv.Atoi(cell(row, "id")); err != nil {
		return r, fmt.Errorf("bad id: %w", err)
	}

	r.Title = cell(row, "title")
	r.Description = cell(row, "description")
	r.Author = cell(row, "author")
	r.SDG = cell(row, "sdg")
	r.Thumbnail = attrOrText(row, "thumbnail", "img", "src")
	r.GitHubLink = attrOrText(row, "github_link", "a", "href")
	r.HostedLink = attrOrText(row, "hosted_link", "a", "href")

	if r.Views, err = parseCount(cell(row, "views")); err != nil {
		return r, fmt.Errorf("bad views: %w", err)
	}
	if r.Likes, err = parseCount(cell(row, "likes")); err != nil {
		return r, fmt.Errorf("bad likes: %w", err)
	}
	if r.Rating, err = strconv.ParseFloat(cell(row, "rating"), 64); err != nil {
		return r, fmt.Errorf("bad rating: %w", err)
	}

	created := cell(row, "created_at")
	if t, ok := row.Find("td.created_at time").Attr("datetime"); ok {
		created = t
	}
	if r.CreatedAt.Time, err = ParseDate(created); err != nil {
		return r, err
	}

	return r, nil
}

func cell(row *goquery.Selection, class string) string {
	return strings.TrimSpace(row.Find("td." + class).First().Text())
}

func attrOrText(row *goquery.Selection, class, tag, attr string) string {
	if v, ok := row.Find("td." + class + " " + tag).Attr(attr); ok {
		return strings.TrimSpace(v)
	}
	return cell(row, class)
}

// parseCount accepts "1,200" as well as "1200"; an empty cell is zero.
func parseCount(s string) (int64, error) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
