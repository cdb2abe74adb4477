package api

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/ksalau/learnflow-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// siteMeta describes the site the feeds point at.
type siteMeta struct {
	URL         string
	Title       string
	Description string
}

// feedHandler serves the RSS feed and sitemap, both derived read-only views
// over published blog posts.
type feedHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
	site         siteMeta
}

func newFeedHandler(blogPostRepo *database.BlogPostRepo, site siteMeta) feedHandler {
	logger := log.With().Str("handlerName", "feedHandler").Logger()

	return feedHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
		site:         site,
	}
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	Category    string `xml:"category"`
}

// rss serves an RSS 2.0 feed of published posts only.
func (h feedHandler) rss() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		items := make([]rssItem, 0, len(posts))
		for _, post := range posts {
			items = append(items, rssItem{
				Title:       post.Title,
				Link:        h.site.URL + "/blog/" + post.ID.String(),
				GUID:        h.site.URL + "/blog/" + post.ID.String(),
				Description: post.Excerpt,
				PubDate:     post.CreatedAt.Format(time.RFC1123Z),
				Category:    post.Category,
			})
		}

		feed := rssFeed{
			Version: "2.0",
			Channel: rssChannel{
				Title:         h.site.Title,
				Link:          h.site.URL,
				Description:   h.site.Description,
				Language:      "en-gb",
				LastBuildDate: time.Now().Format(time.RFC1123Z),
				Items:         items,
			},
		}

		h.writeXML(w, "application/rss+xml; charset=utf-8", feed)
	}
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// sitemap serves the site's static pages plus one entry per published post.
func (h feedHandler) sitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		today := time.Now().Format("2006-01-02")
		urls := []sitemapURL{
			{Loc: h.site.URL, LastMod: today, ChangeFreq: "weekly", Priority: "1.0"},
			{Loc: h.site.URL + "/about", LastMod: today, ChangeFreq: "monthly", Priority: "0.8"},
			{Loc: h.site.URL + "/portfolio", LastMod: today, ChangeFreq: "weekly", Priority: "0.9"},
			{Loc: h.site.URL + "/blog", LastMod: today, ChangeFreq: "weekly", Priority: "0.9"},
			{Loc: h.site.URL + "/contact", LastMod: today, ChangeFreq: "monthly", Priority: "0.7"},
		}
		for _, post := range posts {
			urls = append(urls, sitemapURL{
				Loc:     h.site.URL + "/blog/" + post.ID.String(),
				LastMod: post.UpdatedAt.Format("2006-01-02"),
			})
		}

		h.writeXML(w, "application/xml; charset=utf-8", sitemapURLSet{
			XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs:  urls,
		})
	}
}

func (h feedHandler) writeXML(w http.ResponseWriter, contentType string, data any) {
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		h.logger.Error().Err(err).Msg("error writing XML header")
		return
	}
	if err := xml.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("error encoding XML response")
	}
}
