package latimes

import (
	"io"
	"strings"
	"testing"
)

func TestParserBasicRecord(t *testing.T) {
	src := `<DOC>
<DOCNO> LA010190-0001 </DOCNO>
<HEADLINE>
Quick Fox
</HEADLINE>
<TEXT>
The quick brown fox
</TEXT>
</DOC>`
	p := NewParser(strings.NewReader(src))
	rec, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.Docno != "LA010190-0001" {
		t.Errorf("Docno = %q, want %q", rec.Docno, "LA010190-0001")
	}
	if rec.Headline != "Quick Fox" {
		t.Errorf("Headline = %q, want %q", rec.Headline, "Quick Fox")
	}
	if rec.Text != "The quick brown fox" {
		t.Errorf("Text = %q, want %q", rec.Text, "The quick brown fox")
	}
	if !strings.Contains(rec.RawContent, "<HEADLINE>") {
		t.Errorf("RawContent missing tags: %q", rec.RawContent)
	}

	if _, err := p.Next(); err != io.EOF {
		t.Fatalf("second Next() err = %v, want io.EOF", err)
	}
}

func TestParserSkipsMissingDocno(t *testing.T) {
	src := `<DOC><TEXT>no docno here</TEXT></DOC><DOC><DOCNO>LA010190-0002</DOCNO><TEXT>second</TEXT></DOC>`
	p := NewParser(strings.NewReader(src))
	rec, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.Docno != "LA010190-0002" {
		t.Fatalf("expected the malformed first record to be skipped, got docno %q", rec.Docno)
	}
}

func TestParserUnclosedDocIsEOF(t *testing.T) {
	src := `<DOC><DOCNO>LA010190-0003</DOCNO><TEXT>never closes`
	p := NewParser(strings.NewReader(src))
	if _, err := p.Next(); err != io.EOF {
		t.Fatalf("Next() on unclosed DOC: err = %v, want io.EOF", err)
	}
}

func TestParserIgnoresUnknownTagsButKeepsTheirContentInRawContent(t *testing.T) {
	src := `<DOC><DOCNO>LA010190-0004</DOCNO><TEXT>before<P>middle</P>after</TEXT></DOC>`
	p := NewParser(strings.NewReader(src))
	rec, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.Text != "beforemiddleafter" {
		t.Errorf("Text = %q, want %q", rec.Text, "beforemiddleafter")
	}
	if !strings.Contains(rec.RawContent, "<P>") {
		t.Errorf("RawContent should retain unknown tags verbatim: %q", rec.RawContent)
	}
}
