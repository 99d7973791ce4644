package goquery_test

import (
	"testing"

	"github.com/frederickpi/pagedate"
	"github.com/frederickpi/pagedate/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawsOf(candidates []pagedate.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Raw)
	}
	return out
}

func TestMetaScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("extracts published and modified meta properties", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<meta property="article:published_time" content="2020-05-01T12:00:00Z">
	<meta property="article:modified_time" content="2020-10-29T22:07:06Z">
</head>
<body><p>Article body.</p></body>
</html>`

		s := goquery.NewMetaScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 2)
		assert.Equal(t, "2020-05-01T12:00:00Z", got[0].Raw)
		assert.Equal(t, "2020-10-29T22:07:06Z", got[1].Raw)
		assert.Equal(t, pagedate.MethodStructuredMeta, got[0].Method)
		assert.Less(t, got[0].Position, got[1].Position)
	})

	t.Run("matches name and itemprop attributes", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="article:published_time" content="2020-10-29T22:07:05Z">
<meta itemprop="dateModified" content="2021-01-15">
</head><body></body></html>`

		s := goquery.NewMetaScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		assert.ElementsMatch(t, []string{"2020-10-29T22:07:05Z", "2021-01-15"}, rawsOf(got))
	})

	t.Run("repeated identical values keep document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="article:published_time" content="2020-05-01">
<meta property="og:updated_time" content="2020-05-01">
</head><body></body></html>`

		s := goquery.NewMetaScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 2)
		assert.Less(t, got[0].Position, got[1].Position)
	})

	t.Run("ignores unrelated meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="viewport" content="width=device-width">
<meta property="og:title" content="A Title">
</head><body></body></html>`

		s := goquery.NewMetaScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: html}))
	})

	t.Run("returns nothing for malformed HTML", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewMetaScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: `<html><head><meta property="art`}))
	})
}

func TestJSONLDScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("extracts date fields from a flat object", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">
{
	"@context": "https://schema.org",
	"@type": "Article",
	"datePublished": "2020-09-16T14:24:00Z",
	"dateModified": "2025-06-03T08:40:58Z"
}
</script>
</head><body></body></html>`

		s := goquery.NewJSONLDScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 2)
		assert.ElementsMatch(t, []string{"2020-09-16T14:24:00Z", "2025-06-03T08:40:58Z"}, rawsOf(got))
		assert.Equal(t, pagedate.MethodStructuredData, got[0].Method)
	})

	t.Run("matches date keys at any nesting depth", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">
{
	"@graph": [
		{"@type": "WebPage", "mainEntity": {"@type": "Article", "datePublished": "2019-03-01"}},
		{"@type": "VideoObject", "uploadDate": "2019-04-02"}
	]
}
</script>
</head><body></body></html>`

		s := goquery.NewJSONLDScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		assert.ElementsMatch(t, []string{"2019-03-01", "2019-04-02"}, rawsOf(got))
	})

	t.Run("handles top-level arrays and skips broken blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">{"this is: not json</script>
<script type="application/ld+json">[{"@type": "Article", "datePublished": "2022-11-05"}]</script>
</head><body></body></html>`

		s := goquery.NewJSONLDScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 1)
		assert.Equal(t, "2022-11-05", got[0].Raw)
	})

	t.Run("ignores non-date keys", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">{"@type": "Article", "headline": "2020 in review"}</script>
</head><body></body></html>`

		s := goquery.NewJSONLDScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: html}))
	})
}

func TestTimeScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("prefers datetime attribute over element text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><time datetime="2025-11-14">November 14, 2025</time></article>
</body></html>`

		s := goquery.NewTimeScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 1)
		assert.Equal(t, "2025-11-14", got[0].Raw)
		assert.Equal(t, pagedate.MethodTimeElement, got[0].Method)
	})

	t.Run("falls back to element text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><time>June 3, 2021</time></body></html>`

		s := goquery.NewTimeScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 1)
		assert.Equal(t, "June 3, 2021", got[0].Raw)
	})

	t.Run("repeated identical values keep document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<header><time datetime="2020-05-01">May 1</time></header>
<footer><time datetime="2020-05-01">May 1</time></footer>
</body></html>`

		s := goquery.NewTimeScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 2)
		assert.Less(t, got[0].Position, got[1].Position)
	})

	t.Run("skips empty time elements", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewTimeScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: `<html><body><time></time></body></html>`}))
	})
}

func TestSelectorScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("extracts from itemprop and class selectors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<span itemprop="datePublished" content="2018-06-01"></span>
<div class="entry-date">2018-07-15</div>
</body></html>`

		s := goquery.NewSelectorScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		assert.ElementsMatch(t, []string{"2018-06-01", "2018-07-15"}, rawsOf(got))
		for _, c := range got {
			assert.Equal(t, pagedate.MethodCSSSelector, c.Method)
		}
	})

	t.Run("does not duplicate elements matched by several selectors", func(t *testing.T) {
		t.Parallel()

		// .date also matches [class*="date"]
		html := `<html><body><span class="date">2018-07-15</span></body></html>`

		s := goquery.NewSelectorScanner()

		assert.Len(t, s.Scan(pagedate.Source{HTML: html}), 1)
	})

	t.Run("skips elements with long non-date text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="dateline">` +
			`This paragraph mentions an update policy but contains far too much prose to be a timestamp value.` +
			`</div></body></html>`

		s := goquery.NewSelectorScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: html}))
	})
}

func TestLinkScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("extracts date shape from canonical link", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<link rel="canonical" href="https://example.com/blog/2020/05/01/launch-day">
</head><body></body></html>`

		s := goquery.NewLinkScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 1)
		assert.Equal(t, "2020/05/01", got[0].Raw)
		assert.Equal(t, pagedate.MethodLinkRelation, got[0].Method)
	})

	t.Run("repeated identical targets keep document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<link rel="canonical" href="https://example.com/blog/2020/05/01/launch-day">
<link rel="amphtml" href="https://example.com/blog/2020/05/01/launch-day">
</head><body></body></html>`

		s := goquery.NewLinkScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 2)
		assert.Less(t, got[0].Position, got[1].Position)
	})

	t.Run("ignores stylesheet and icon links", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<link rel="stylesheet" href="/assets/2020/05/01/site.css">
</head><body></body></html>`

		s := goquery.NewLinkScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: html}))
	})

	t.Run("ignores dateless link targets", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="canonical" href="https://example.com/about"></head></html>`

		s := goquery.NewLinkScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: html}))
	})
}

func TestURLScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("extracts year month day path segments", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewURLScanner()
		got := s.Scan(pagedate.Source{URL: "https://example.com/news/2019/07/04/fireworks"})

		require.Len(t, got, 1)
		assert.Equal(t, "2019/07/04", got[0].Raw)
		assert.Equal(t, pagedate.MethodURLPattern, got[0].Method)
		assert.Zero(t, got[0].Position)
	})

	t.Run("matches dashed permalink shapes", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewURLScanner()
		got := s.Scan(pagedate.Source{URL: "https://example.com/posts/2019-07-04-fireworks.html"})

		require.Len(t, got, 1)
		assert.Equal(t, "2019/07/04", got[0].Raw)
	})

	t.Run("rejects implausible month segments", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewURLScanner()

		assert.Empty(t, s.Scan(pagedate.Source{URL: "https://example.com/build/2021/55/99/artifact"}))
	})

	t.Run("returns nothing without a URL", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewURLScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: "<html></html>"}))
	})
}

func TestVisibleScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("matches ISO, US and European forms with offsets", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Released 2020-05-01 worldwide.</p>
<p>Reviewed June 3, 2021 by the editors.</p>
<p>Archived 3 July 2022.</p>
</body></html>`

		s := goquery.NewVisibleScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 3)
		assert.Equal(t, []string{"2020-05-01", "June 3, 2021", "3 July 2022"}, rawsOf(got))
		assert.Less(t, got[0].Position, got[1].Position)
		assert.Less(t, got[1].Position, got[2].Position)
	})

	t.Run("prefers the timestamped form over its embedded date", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Logged at 2020-05-01T12:00:00Z precisely.</p></body></html>`

		s := goquery.NewVisibleScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 1)
		assert.Equal(t, "2020-05-01T12:00:00Z", got[0].Raw)
	})

	t.Run("ignores script and style content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<style>.banner { content: "2022-12-25"; }</style>
</head><body>
<p>No dates in prose.</p>
<script>var released = "2023-09-09"; report("2024-01-01");</script>
</body></html>`

		s := goquery.NewVisibleScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: html}))
	})

	t.Run("still matches prose dates next to script blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Released 2020-05-01 worldwide.</p>
<script>var released = "2023-09-09";</script>
</body></html>`

		s := goquery.NewVisibleScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 1)
		assert.Equal(t, "2020-05-01", got[0].Raw)
	})
}

func TestPhraseScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("finds date after last updated marker", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><footer>Last updated: June 3, 2021</footer></body></html>`

		s := goquery.NewPhraseScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 1)
		assert.Equal(t, "June 3, 2021", got[0].Raw)
		assert.Equal(t, pagedate.MethodUpdatePhrase, got[0].Method)
	})

	t.Run("tolerates a few words between marker and date", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>This page was last modified by staff on 2021-06-03.</p></body></html>`

		s := goquery.NewPhraseScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		require.Len(t, got, 1)
		assert.Equal(t, "2021-06-03", got[0].Raw)
	})

	t.Run("ignores markers with no nearby date", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Last updated whenever the team finds the time, which is not often; the real schedule lives elsewhere. 2020-05-01</p></body></html>`

		s := goquery.NewPhraseScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: html}))
	})

	t.Run("ignores posted markers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Posted January 5, 2019</p></body></html>`

		s := goquery.NewPhraseScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: html}))
	})

	t.Run("ignores markers inside script content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Plain prose without a timestamp.</p>
<script>log("last updated 2021-06-03");</script>
</body></html>`

		s := goquery.NewPhraseScanner()

		assert.Empty(t, s.Scan(pagedate.Source{HTML: html}))
	})
}

func TestGenericScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("finds dates hidden in attributes and comments", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<!-- build 2020-05-01 -->
<div data-published="2021-06-03">text</div>
</body></html>`

		s := goquery.NewGenericScanner()
		got := s.Scan(pagedate.Source{HTML: html})

		assert.Equal(t, []string{"2020-05-01", "2021-06-03"}, rawsOf(got))
		assert.Equal(t, pagedate.MethodGenericFallback, got[0].Method)
	})
}

func TestDefaultScanners(t *testing.T) {
	t.Parallel()

	scanners := goquery.DefaultScanners()

	require.NotEmpty(t, scanners)
	for i := 1; i < len(scanners); i++ {
		assert.GreaterOrEqual(t,
			scanners[i-1].Method().TrustWeight(),
			scanners[i].Method().TrustWeight(),
			"scanners should be ordered by descending trust")
	}
}
