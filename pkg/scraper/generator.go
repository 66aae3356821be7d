package scraper

import (
	"context"
	"time"

	"redditpersona/pkg/analysis"
	"redditpersona/pkg/config"
	"redditpersona/pkg/errors"
	"redditpersona/pkg/logger"
	"redditpersona/pkg/persona"
	"redditpersona/pkg/reddit"
	"redditpersona/pkg/report"
	"redditpersona/pkg/retry"
)

// Fatal run errors. Everything else (partial pages, missing account
// info) degrades gracefully.
var (
	ErrInvalidProfileURL = &errors.Error{
		Type:    errors.ErrorTypeParsing,
		Message: "could not extract username from profile URL",
	}
	ErrNoContent = &errors.Error{
		Type:    errors.ErrorTypeNotFound,
		Message: "no posts or comments found for user",
	}
)

// Result is the outcome of a persona generation run
type Result struct {
	Persona    *persona.Persona
	ReportPath string
}

// Generator orchestrates a full persona run: scrape the user's posts
// and comments, analyze the text, assemble the persona, write the
// report.
type Generator struct {
	client    *reddit.Client
	paginator *reddit.Paginator
	extractor *analysis.Extractor
	tables    *analysis.Tables
	writer    *report.Writer
	config    *config.Config
	logger    logger.Logger
	now       func() time.Time
}

// New creates a new Generator instance
func New(cfg *config.Config) (*Generator, error) {
	log := logger.GetLogger()

	var retrier *retry.Retrier
	if cfg.Retry.Enabled {
		retrier = retry.NewRetrier(&retry.Config{
			MaxAttempts: cfg.Retry.MaxAttempts,
			Backoff: &retry.ExponentialBackoff{
				BaseDelay:    cfg.Retry.InitialDelay,
				MaxDelay:     cfg.Retry.MaxDelay,
				Multiplier:   2.0,
				JitterFactor: 0.1,
			},
			RetryIf: retry.DefaultRetryIf,
			Context: context.Background(),
			Logger:  log,
		})
	}

	client := reddit.NewClient(reddit.ClientOptions{
		BaseURL:           cfg.Reddit.BaseURL,
		UserAgent:         cfg.Reddit.UserAgent,
		Timeout:           cfg.Reddit.Timeout,
		RequestDelay:      cfg.Reddit.RequestDelay,
		RequestsPerMinute: cfg.Reddit.RequestsPerMinute,
		Retrier:           retrier,
	}, log)

	tables := analysis.DefaultTables()
	if cfg.Analysis.TablesFile != "" {
		loaded, err := analysis.LoadTables(cfg.Analysis.TablesFile)
		if err != nil {
			return nil, err
		}
		tables = loaded
	}

	writer, err := report.NewWriter(cfg.Output.Directory, cfg.Output.FileNamePattern)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:    client,
		paginator: reddit.NewPaginator(client, cfg.Scrape.PageSize, log),
		extractor: analysis.NewExtractor(tables, cfg.Analysis.ExcerptLength, cfg.Analysis.InterestCitationCap),
		tables:    tables,
		writer:    writer,
		config:    cfg,
		logger:    log,
		now:       time.Now,
	}, nil
}

// Generate runs the full pipeline for the given profile URL and
// returns the assembled persona with the written report's path.
//
// A fetch failure partway through pagination keeps whatever was
// collected; a failed account-info fetch falls back to item
// timestamps. Only a bad URL or a user with no content at all is
// fatal.
func (g *Generator) Generate(profileURL string) (*Result, error) {
	username := reddit.ExtractUsername(profileURL)
	if username == "" {
		return nil, ErrInvalidProfileURL
	}

	g.logger.InfoWithFields("processing reddit user", map[string]interface{}{
		"username": username,
	})

	info, err := g.client.FetchAccountInfo(username)
	if err != nil {
		info = nil
	}

	posts := g.paginator.Collect(username, reddit.ListingSubmitted, g.config.Scrape.MaxItems)
	comments := g.paginator.Collect(username, reddit.ListingComments, g.config.Scrape.MaxItems)

	g.logger.InfoWithFields("content collected", map[string]interface{}{
		"username": username,
		"posts":    len(posts),
		"comments": len(comments),
	})

	if len(posts) == 0 && len(comments) == 0 {
		return nil, ErrNoContent
	}

	items := make([]reddit.ContentItem, 0, len(posts)+len(comments))
	items = append(items, posts...)
	items = append(items, comments...)

	g.logger.Info("generating user persona")

	activity := analysis.SummarizeActivity(items, info, g.now())
	demographicCitations := g.extractor.ExtractDemographics(items)
	interests, interestCitations := g.extractor.ExtractInterests(items)
	personality := g.extractor.ExtractPersonality(items)

	p := persona.Assemble(persona.Input{
		Username:             username,
		GeneratedAt:          g.now(),
		Activity:             activity,
		Demographics:         analysis.InferDemographics(demographicCitations, g.tables),
		Interests:            interests,
		Personality:          personality,
		DemographicCitations: demographicCitations,
		InterestCitations:    interestCitations,
	})

	path, err := g.writer.Write(p)
	if err != nil {
		return nil, err
	}

	g.logger.InfoWithFields("persona report written", map[string]interface{}{
		"username": username,
		"path":     path,
	})

	return &Result{Persona: p, ReportPath: path}, nil
}
