package providers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Post is a single message of the public channel feed.
type Post struct {
	ID   string
	Text string
	Date time.Time
}

// CEKProvider reads posts from the public web preview of a Telegram channel (https://t.me/s/<channel>).
type CEKProvider struct {
	channelURL string
	loadPage   func(context.Context, string) ([]byte, error)
}

func NewCEKProvider(channelURL string, client *http.Client) *CEKProvider {
	return &CEKProvider{
		channelURL: channelURL,
		loadPage: func(ctx context.Context, url string) ([]byte, error) {
			return loadPage(ctx, client, url)
		},
	}
}

// Posts returns up to limit posts, most recent first. limit <= 0 returns the whole page.
func (p *CEKProvider) Posts(ctx context.Context, limit int) ([]Post, error) {
	html, err := p.loadPage(ctx, p.channelURL)
	if err != nil {
		return nil, fmt.Errorf("load channel page: %w", err)
	}

	posts, err := parseChannelPage(html)
	if err != nil {
		return nil, fmt.Errorf("parse channel page: %w", err)
	}

	// the preview lists posts oldest first
	slices.Reverse(posts)
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func loadPage(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get posts from page=%s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get posts from page=%s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get posts from page=%s: status=%s", url, resp.Status)
	}

	var res bytes.Buffer
	if _, err = res.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read posts from page=%s: %w", url, err)
	}
	return res.Bytes(), nil
}

func parseChannelPage(html []byte) ([]Post, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	messages := doc.Find(".tgme_widget_message")
	if messages.Length() == 0 {
		return nil, ErrNoPosts
	}

	res := make([]Post, 0, messages.Length())
	messages.Each(func(_ int, s *goquery.Selection) {
		textSel := s.Find(".tgme_widget_message_text").First()
		if textSel.Length() == 0 {
			// media-only post
			return
		}
		textSel.Find("br").ReplaceWithHtml("\n")

		post := Post{
			ID:   postID(s),
			Text: strings.TrimSpace(textSel.Text()),
		}
		if datetime, ok := s.Find(".tgme_widget_message_date time").First().Attr("datetime"); ok {
			if t, err := time.Parse(time.RFC3339, datetime); err == nil {
				post.Date = t
			}
		}
		res = append(res, post)
	})

	return res, nil
}

// postID prefers data-post ("channel/123") and falls back to the permalink.
func postID(s *goquery.Selection) string {
	if v, ok := s.Attr("data-post"); ok && v != "" {
		return v[strings.LastIndex(v, "/")+1:]
	}
	if href, ok := s.Find("a.tgme_widget_message_date").First().Attr("href"); ok && href != "" {
		return href[strings.LastIndex(href, "/")+1:]
	}
	return ""
}
