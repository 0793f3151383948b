package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

// Log receives read failures from Extract. It writes to stdout so that failed
// files show up next to the run's other output.
var Log = newLog()

func newLog() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	return l
}

func Open(file string) (*os.File, *pdf.Reader, error) {
	return pdf.Open(file)
}

// Extract returns all the text in the PDF file at path. Failures to open or
// parse the file are logged and yield an empty string.
func Extract(path string) (text string) {
	log := Log.WithField("file", path)
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("Error reading PDF: %v", r)
			text = ""
		}
	}()

	f, slurper, err := Open(path)
	if err != nil {
		log.Warnf("Error reading PDF: %v", err)
		return ""
	}
	defer func() {
		_ = f.Close()
	}()

	r, err := PlainText(slurper, AllPages)
	if err != nil {
		log.Warnf("Error reading PDF: %v", err)
		return ""
	}
	b, err := io.ReadAll(r)
	if err != nil {
		log.Warnf("Error reading PDF: %v", err)
		return ""
	}
	return string(b)
}

// PlainText returns the text of the pages in pageRange
func PlainText(r *pdf.Reader, pageRange PageRange) (reader io.Reader, err error) {
	pages := r.NumPage()
	if pageRange == AllPages {
		pageRange.Start = 1
		pageRange.End = pages
	}
	if pageRange.End > pages {
		pageRange.End = pages
	}
	var buf bytes.Buffer
	fonts := make(map[string]*pdf.Font)
	for i := pageRange.Start; i <= pageRange.End; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			logrus.Debugf("page %d is null, skipping", i)
			continue
		}
		for _, name := range p.Fonts() { // cache fonts so we don't continually parse charmap
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				logrus.Debugf("font: %s %s", name, f.BaseFont())
				fonts[name] = &f
			}
		}

		text, err := GetPlainText(p, fonts)
		if err != nil {
			return &bytes.Buffer{}, fmt.Errorf("page %d: %w", i, err)
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	return &buf, nil
}

var AllPages = PageRange{}

type PageRange struct {
	Start int
	End   int
}

// GetPlainText returns all unformatted text of a page.
// fonts can be passed in (to improve parsing performance) or left nil
func GetPlainText(p pdf.Page, fonts map[string]*pdf.Font) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = errors.New(fmt.Sprint(r))
		}
	}()

	strm := p.V.Key("Contents")
	var enc pdf.TextEncoding
	var nopEnc nopEncoder
	enc = &nopEnc

	var textBuilder bytes.Buffer
	showText := func(s string) {
		for _, ch := range enc.Decode(s) {
			_, err := textBuilder.WriteRune(ch)
			if err != nil {
				panic(err)
			}
		}
	}

	pdf.Interpret(strm, func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}

		switch op {
		default:
			return
		case "T*": // move to start of next line
			showText("\n")
		case "Td", "TD": // move text position, a vertical move starts a new line
			if len(args) == 2 && args[1].Float64() != 0 {
				showText("\n")
			}
		case "Tf": // set text font and size
			if len(args) != 2 {
				panic("bad Tf")
			}
			if font, ok := fonts[args[0].Name()]; ok {
				enc = font.Encoder()
			} else {
				enc = &nopEncoder{}
			}
		case "\"": // set spacing, move to next line, and show text
			if len(args) != 3 {
				logrus.Warnf("bad \\ operator")
				return
			}
			showText("\n")
			showText(args[2].RawString())
		case "'": // move to next line and show text
			if len(args) != 1 {
				logrus.Warnf("bad ' operator")
				return
			}
			showText("\n")
			showText(args[0].RawString())
		case "Tj":
			if len(args) != 1 {
				logrus.Warnf("bad Tj operator")
				return
			}
			showText(args[0].RawString())
		case "TJ": // show text, allowing individual glyph positioning
			v := args[0]
			for i := 0; i < v.Len(); i++ {
				x := v.Index(i)
				if x.Kind() == pdf.String {
					showText(x.RawString())
				}
			}
		}
	})
	return textBuilder.String(), nil
}

type nopEncoder struct {
}

func (e *nopEncoder) Decode(raw string) (text string) {
	return raw
}
