package googlefonts

import "testing"

const sampleCSS = `
/* latin */
@font-face {
  font-family: 'Open Sans';
  font-style: normal;
  font-weight: 400;
  font-stretch: 100%;
  src: url(https://fonts.gstatic.com/s/opensans/v40/regular.woff2) format('woff2');
}
/* latin */
@font-face {
  font-family: 'Open Sans';
  font-style: normal;
  font-weight: 700;
  font-stretch: 100%;
  src: url(https://fonts.gstatic.com/s/opensans/v40/bold.woff2) format('woff2');
}
`

func TestParseStylesheet(t *testing.T) {
	byWeight := parseStylesheet(sampleCSS)

	if len(byWeight) != 2 {
		t.Fatalf("parsed %d weights, want 2", len(byWeight))
	}
	if byWeight[400] != "https://fonts.gstatic.com/s/opensans/v40/regular.woff2" {
		t.Errorf("weight 400 URL = %s", byWeight[400])
	}
	if byWeight[700] != "https://fonts.gstatic.com/s/opensans/v40/bold.woff2" {
		t.Errorf("weight 700 URL = %s", byWeight[700])
	}
}

func TestParseStylesheet_PrefersWoff2(t *testing.T) {
	css := `@font-face {
  font-weight: 400;
  src: url(https://fonts.gstatic.com/s/x/a.woff2) format('woff2'),
       url(https://fonts.gstatic.com/s/x/a.ttf) format('truetype');
}`
	byWeight := parseStylesheet(css)
	if byWeight[400] != "https://fonts.gstatic.com/s/x/a.woff2" {
		t.Errorf("got %s, want the woff2 URL", byWeight[400])
	}
}

func TestParseStylesheet_TTFFallback(t *testing.T) {
	// Without the browser User-Agent the service only serves ttf URLs.
	css := `@font-face {
  font-weight: 400;
  src: url(https://fonts.gstatic.com/s/x/a.ttf) format('truetype');
}`
	byWeight := parseStylesheet(css)
	if byWeight[400] != "https://fonts.gstatic.com/s/x/a.ttf" {
		t.Errorf("got %s, want the ttf URL", byWeight[400])
	}
}

func TestParseStylesheet_SkipsIncompleteBlocks(t *testing.T) {
	css := `@font-face {
  font-family: 'NoWeight';
  src: url(https://fonts.gstatic.com/s/x/a.woff2);
}
@font-face {
  font-weight: 700;
  font-family: 'NoURL';
}
@font-face {
  font-weight: 400;
  src: url(https://fonts.gstatic.com/s/x/good.woff2);
}`
	byWeight := parseStylesheet(css)
	if len(byWeight) != 1 {
		t.Fatalf("parsed %d weights, want only the complete block", len(byWeight))
	}
	if _, ok := byWeight[400]; !ok {
		t.Error("the complete block should have been parsed")
	}
}

func TestParseStylesheet_Empty(t *testing.T) {
	for _, css := range []string{"", "body { color: red }", "/* no font faces */"} {
		if got := parseStylesheet(css); len(got) != 0 {
			t.Errorf("parseStylesheet(%q) = %v, want empty", css, got)
		}
	}
}

func TestParseStylesheet_NonHTTPSIgnored(t *testing.T) {
	css := `@font-face {
  font-weight: 400;
  src: url(http://insecure.example.com/a.woff2);
}`
	if got := parseStylesheet(css); len(got) != 0 {
		t.Errorf("non-https URLs should not be extracted, got %v", got)
	}
}
