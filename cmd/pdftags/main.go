package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"pdftags/internal/batch"
	"pdftags/internal/config"
	"pdftags/internal/keywords"
	"pdftags/internal/nlp"
	"pdftags/internal/pdf"
	"pdftags/internal/summary"
)

var (
	app  = kingpin.New("pdftags", "scan a folder of pdf files and tag each one with hashtags and a summary")
	args = struct {
		folder           *string
		config           *string
		maxTags          optionalInt
		output           *string
		langModel        *string
		summarizer       *string
		keywords         *string
		summarySentences optionalInt
		dehyphenate      *bool
		logLevel         *string
		quiet            *bool
	}{
		folder:      app.Arg("folder_path", "folder containing the pdf files").Required().ExistingDir(),
		config:      app.Flag("config", "yaml file with default settings").Short('c').ExistingFile(),
		output:      app.Flag("output", "output json file (default output.json)").Short('o').String(),
		langModel:   app.Flag("lang_model", "language model to load (default en)").Short('m').String(),
		summarizer:  app.Flag("summarizer", "summary method").Enum(summary.Methods()...),
		keywords:    app.Flag("keywords", "keyword strategy").Enum(keywords.Strategies()...),
		dehyphenate: app.Flag("dehyphenate", "join words split across lines with a hyphen").Bool(),
		logLevel:    app.Flag("log_level", "log level (default info)").String(),
		quiet:       app.Flag("quiet", "do not draw a progress bar").Short('q').Bool(),
	}
)

func init() {
	app.Flag("max_tags", "maximum number of hashtags per document (default 5)").Short('t').SetValue(&args.maxTags)
	app.Flag("summary_sentences", "number of sentences in a summary (default 3)").SetValue(&args.summarySentences)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := resolveConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logrus.SetLevel(level)
	pdf.Log.SetLevel(level)

	log := logrus.WithField("run", ulid.Make().String())
	log.Infof("input: %s", *args.folder)

	model, err := nlp.Load(cfg.LangModel)
	if err != nil {
		logrus.Fatal(err)
	}
	sum, err := summary.New(cfg.Summarizer)
	if err != nil {
		logrus.Fatal(err)
	}

	extractor := keywords.New(model,
		keywords.WithMaxTags(cfg.MaxTags),
		keywords.WithSummarizer(sum, cfg.SummarySentences),
		keywords.WithStrategy(cfg.Keywords),
		keywords.WithStopwords(cfg.Stopwords),
		keywords.WithVocabularyLimit(cfg.VocabularyLimit),
	)
	runner := batch.NewRunner(batch.NewProcessor(extractor, cfg.Dehyphenate, log), pdf.Extract, log)
	if !*args.quiet && isatty.IsTerminal(os.Stderr.Fd()) {
		runner.Progress = batch.NewProgressBar(os.Stderr)
	}

	if _, err := runner.Run(*args.folder, cfg.Output); err != nil {
		logrus.Fatal(err)
	}
	fmt.Printf("Data saved to %s\n", cfg.Output)
}

// resolveConfig layers the config file and explicit flags over the defaults.
func resolveConfig() (config.Config, error) {
	cfg := config.Default()
	if *args.config != "" {
		var err error
		if cfg, err = config.Load(*args.config); err != nil {
			return cfg, err
		}
	}
	cfg = cfg.Apply(config.Overrides{
		MaxTags:          args.maxTags.ptr(),
		Output:           *args.output,
		LangModel:        *args.langModel,
		Summarizer:       *args.summarizer,
		Keywords:         *args.keywords,
		SummarySentences: args.summarySentences.ptr(),
		Dehyphenate:      *args.dehyphenate,
		LogLevel:         *args.logLevel,
	})
	return cfg, cfg.Validate()
}

// optionalInt is an int flag that remembers whether it was given.
type optionalInt struct {
	value int
	set   bool
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected an integer, got %q", s)
	}
	o.value, o.set = v, true
	return nil
}

func (o *optionalInt) String() string {
	if !o.set {
		return ""
	}
	return strconv.Itoa(o.value)
}

func (o *optionalInt) ptr() *int {
	if !o.set {
		return nil
	}
	return &o.value
}
