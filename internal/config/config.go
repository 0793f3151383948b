// Package config holds the settings of a pdftags run. Values come from
// built-in defaults, an optional YAML file and command-line flags, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"pdftags/internal/keywords"
	"pdftags/internal/nlp"
	"pdftags/internal/summary"
)

type Config struct {
	MaxTags          int      `yaml:"max_tags"`
	Output           string   `yaml:"output"`
	LangModel        string   `yaml:"lang_model"`
	Summarizer       string   `yaml:"summarizer"`
	Keywords         string   `yaml:"keywords"`
	SummarySentences int      `yaml:"summary_sentences"`
	VocabularyLimit  int      `yaml:"vocabulary_limit"`
	Dehyphenate      bool     `yaml:"dehyphenate"`
	Stopwords        []string `yaml:"stopwords"`
	LogLevel         string   `yaml:"log_level"`
}

func Default() Config {
	return Config{
		MaxTags:          keywords.DefaultMaxTags,
		Output:           "output.json",
		LangModel:        nlp.DefaultModel,
		Summarizer:       summary.Lead,
		Keywords:         keywords.Frequency,
		SummarySentences: keywords.DefaultSummarySentences,
		LogLevel:         logrus.InfoLevel.String(),
	}
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and names. The language model is checked when it is loaded.
func (c Config) Validate() error {
	if c.MaxTags < 0 {
		return fmt.Errorf("max_tags must not be negative, got %d", c.MaxTags)
	}
	if c.SummarySentences <= 0 {
		return fmt.Errorf("summary_sentences must be positive, got %d", c.SummarySentences)
	}
	if c.VocabularyLimit < 0 {
		return fmt.Errorf("vocabulary_limit must not be negative, got %d", c.VocabularyLimit)
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	if _, err := summary.New(c.Summarizer); err != nil {
		return err
	}
	if _, err := keywords.ParseStrategy(c.Keywords); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Overrides carries values set explicitly on the command line. Nil and empty
// values leave the config untouched.
type Overrides struct {
	MaxTags          *int
	Output           string
	LangModel        string
	Summarizer       string
	Keywords         string
	SummarySentences *int
	Dehyphenate      bool
	LogLevel         string
}

func (c Config) Apply(o Overrides) Config {
	if o.MaxTags != nil {
		c.MaxTags = *o.MaxTags
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.LangModel != "" {
		c.LangModel = o.LangModel
	}
	if o.Summarizer != "" {
		c.Summarizer = o.Summarizer
	}
	if o.Keywords != "" {
		c.Keywords = o.Keywords
	}
	if o.SummarySentences != nil {
		c.SummarySentences = *o.SummarySentences
	}
	if o.Dehyphenate {
		c.Dehyphenate = true
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	return c
}
