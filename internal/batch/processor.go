// Package batch turns a folder of PDF files into a list of tagged records.
package batch

import (
	"strings"

	"github.com/sirupsen/logrus"

	"pdftags/internal/clean"
	"pdftags/internal/keywords"
)

// KeywordExtractor derives hashtags, summary and word count from cleaned text.
type KeywordExtractor interface {
	Extract(text string) (keywords.Result, error)
}

// joins words broken across lines with a hyphen
var dehyphenator = strings.NewReplacer("-\r\n", "", "-\n", "")

type Processor struct {
	extractor   KeywordExtractor
	dehyphenate bool
	log         logrus.FieldLogger
}

func NewProcessor(extractor KeywordExtractor, dehyphenate bool, log logrus.FieldLogger) *Processor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Processor{
		extractor:   extractor,
		dehyphenate: dehyphenate,
		log:         log,
	}
}

// Process builds the record for one file from its raw text. Empty text, or
// text the extractor fails on, gives a record with no hashtags, no summary and
// a zero word count.
func (p *Processor) Process(fileName, rawText string) Record {
	if p.dehyphenate {
		rawText = dehyphenator.Replace(rawText)
	}
	res, err := p.extractor.Extract(clean.Clean(rawText))
	if err != nil {
		p.log.WithField("file", fileName).Warnf("extract keywords: %v", err)
		res = keywords.Result{}
	}
	if res.Hashtags == nil {
		res.Hashtags = []string{}
	}
	return Record{
		Hashtags:  res.Hashtags,
		Summary:   res.Summary,
		WordCount: res.WordCount,
		FileName:  fileName,
	}
}
