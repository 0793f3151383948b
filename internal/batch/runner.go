package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// TextSource returns the text of the PDF at path, or "" if it cannot be read.
type TextSource func(path string) string

type Runner struct {
	processor *Processor
	source    TextSource
	log       logrus.FieldLogger

	// Progress, when set, is called once with the number of files to process.
	Progress func(total int) Progress
}

func NewRunner(processor *Processor, source TextSource, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		processor: processor,
		source:    source,
		log:       log,
	}
}

// Run processes every PDF in folder in name order and writes the records to
// output once all of them are done.
func (r *Runner) Run(folder, output string) ([]Record, error) {
	names, err := ListPDFs(folder)
	if err != nil {
		return nil, err
	}
	r.log.Infof("found %d pdf files in %s", len(names), folder)

	progress := Progress(nopProgress{})
	if r.Progress != nil {
		progress = r.Progress(len(names))
	}

	records := make([]Record, 0, len(names))
	for _, name := range names {
		progress.Describe(name)
		text := r.source(filepath.Join(folder, name))
		rec := r.processor.Process(name, text)
		r.log.WithField("file", name).Debugf("%d words, tags %v", rec.WordCount, rec.Hashtags)
		records = append(records, rec)
		_ = progress.Add(1)
	}
	_ = progress.Finish()

	if err := WriteFile(output, records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListPDFs returns the names of regular files in folder ending in ".pdf",
// case-insensitively, sorted by name.
func ListPDFs(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
