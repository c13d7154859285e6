package latimes

import (
	"bufio"
	"compress/gzip"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// DocRecord is one parsed <DOC>...</DOC> record. Text, Headline, and
// Graphic hold character data only (tags stripped); RawContent holds
// everything seen between <DOC> and </DOC> verbatim, tags included, for
// persistence (§4.5).
type DocRecord struct {
	Docno      string
	Headline   string
	Text       string
	Graphic    string
	RawContent string
}

// Parser is a small hand-written push-style state machine over the
// gzipped, SGML-tagged corpus stream. It recognizes exactly the tags named
// in §6 (DOC, DOCNO, HEADLINE, TEXT, GRAPHIC), case-insensitively, and
// ignores everything else the way a full HTML/XML parser would not need
// to: there is no nesting, no attributes, no DTD to honor.
type Parser struct {
	r *bufio.Reader
}

// NewParser wraps an already-decompressed byte stream.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: bufio.NewReaderSize(r, 64*1024)}
}

// OpenCorpus opens a gzip-compressed corpus file and returns a Parser over
// it plus a close function the caller must invoke when done.
func OpenCorpus(path string) (*Parser, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	closeFn := func() error {
		gzErr := gz.Close()
		fErr := f.Close()
		if gzErr != nil {
			return gzErr
		}
		return fErr
	}
	return NewParser(gz), closeFn, nil
}

// Next returns the next well-formed document record, skipping (with a
// logged diagnostic) any record missing a DOCNO tag, and returns io.EOF
// once the stream is exhausted — including when it ends mid-record, which
// is logged as an unclosed-DOC diagnostic rather than surfaced as a fatal
// error (§4.5, §7: malformed records are skipped, the build is not
// aborted).
func (p *Parser) Next() (*DocRecord, error) {
	for {
		if err := p.skipUntilDocOpen(); err != nil {
			return nil, err
		}
		rec, skip, err := p.readDocBody()
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		return rec, nil
	}
}

// skipUntilDocOpen discards bytes until a <DOC> open tag has been
// consumed, or returns io.EOF if the stream ends first.
func (p *Parser) skipUntilDocOpen() error {
	for {
		r, _, err := p.r.ReadRune()
		if err != nil {
			return io.EOF
		}
		if r != '<' {
			continue
		}
		tag, err := p.readTag()
		if err != nil {
			return io.EOF
		}
		if strings.EqualFold(tag, "DOC") {
			return nil
		}
	}
}

// readDocBody consumes characters up to and including </DOC>, routing
// character data into the active named-field buffer(s) and always into
// content (the verbatim capture). It reports skip=true when </DOC> closed
// a record with no DOCNO; err is io.EOF when the stream ends first.
func (p *Parser) readDocBody() (rec *DocRecord, skip bool, err error) {
	var content, docno, headline, text, graphic strings.Builder
	var inDocno, inHeadline, inText, inGraphic bool

	for {
		r, size, rerr := p.r.ReadRune()
		if rerr != nil {
			slog.Warn("corpus ended with an unclosed DOC record", "error", ErrUnclosedDoc)
			return nil, false, io.EOF
		}
		if r == utf8.RuneError && size == 1 {
			continue // lenient decoding: drop invalid bytes (§6)
		}

		if r != '<' {
			content.WriteRune(r)
			if inDocno {
				docno.WriteRune(r)
			}
			if inHeadline {
				headline.WriteRune(r)
			}
			if inText {
				text.WriteRune(r)
			}
			if inGraphic {
				graphic.WriteRune(r)
			}
			continue
		}

		tag, terr := p.readTag()
		if terr != nil {
			slog.Warn("corpus ended with an unclosed DOC record", "error", ErrUnclosedDoc)
			return nil, false, io.EOF
		}
		content.WriteByte('<')
		content.WriteString(tag)
		content.WriteByte('>')

		closing := strings.HasPrefix(tag, "/")
		name := strings.ToUpper(strings.TrimPrefix(tag, "/"))
		switch name {
		case "DOC":
			if closing {
				docnoVal := strings.TrimSpace(docno.String())
				if docnoVal == "" {
					slog.Warn("skipping record with no DOCNO", "error", ErrMissingDocno)
					return nil, true, nil
				}
				return &DocRecord{
					Docno:      docnoVal,
					Headline:   joinFields(headline.String()),
					Text:       joinFields(text.String()),
					Graphic:    joinFields(graphic.String()),
					RawContent: content.String(),
				}, false, nil
			}
			// a stray nested <DOC> open inside a DOC is not expected in
			// this corpus; ignore it as an unrecognized tag.
		case "DOCNO":
			inDocno = !closing
		case "HEADLINE":
			inHeadline = !closing
		case "TEXT":
			inText = !closing
		case "GRAPHIC":
			inGraphic = !closing
		}
	}
}

// readTag reads from just after '<' up to (and consuming) the matching
// '>', returning the raw tag text (e.g. "DOCNO" or "/DOCNO").
func (p *Parser) readTag() (string, error) {
	var b strings.Builder
	for {
		r, _, err := p.r.ReadRune()
		if err != nil {
			return "", err
		}
		if r == '>' {
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// joinFields collapses runs of whitespace (including the newlines the raw
// corpus uses to wrap lines) into single spaces and trims the ends, per
// §4.5's "preserved with single-space joins between chunks."
func joinFields(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
