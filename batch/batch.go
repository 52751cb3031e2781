// Package batch fingerprints every image under a directory with a bounded
// pool of workers. Per-file failures are reported, not fatal.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/AnyUserName/dupimg/imghash"
	"github.com/AnyUserName/dupimg/sampler"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoImages is returned when the input directory holds no images.
	ErrNoImages = errors.New("batch: no images found")

	// ErrAllFailed is returned when not a single image could be hashed.
	ErrAllFailed = errors.New("batch: every image failed")

	// ErrChanged is reported for a file whose size changed between scan and read.
	ErrChanged = errors.New("batch: file changed during run")
)

// Batch orchestrates fingerprinting of a directory.
type Batch struct {
	cfg    Config
	hasher *imghash.Hasher
	log    logrus.FieldLogger
}

// New creates a configured batch, filling in defaults.
func New(cfg Config) *Batch {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Sampler == nil {
		cfg.Sampler = sampler.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.Profile.Name == "" {
		cfg.Profile = GetProfile(DefaultProfile)
	}
	return &Batch{
		cfg:    cfg,
		hasher: imghash.New(cfg.Sampler),
		log:    cfg.Logger.WithField("profile", cfg.Profile.Name),
	}
}

// Run scans the input directory, hashes every image and returns the report.
// Cancelling ctx stops dispatching new files and Run returns ctx's error.
func (b *Batch) Run(ctx context.Context) (*Report, error) {
	sources, err := ScanImages(b.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, b.cfg.InputDir)
	}
	b.log.WithFields(logrus.Fields{
		"images":  len(sources),
		"workers": b.cfg.Workers,
	}).Info("hashing images")

	results := make([]processResult, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers)

	for i, src := range sources {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = b.process(src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := NewReport(b.cfg.Profile)
	r.Workers = b.cfg.Workers
	for _, res := range results {
		if res.err != nil {
			b.log.WithFields(logrus.Fields{
				"file":  res.source.RelPath,
				"error": res.err,
			}).Warn("image skipped")
			r.Failures = append(r.Failures, Failure{Path: res.source.RelPath, Error: res.err.Error()})
			continue
		}
		r.Entries[res.source.Key] = res.entry
	}
	r.ComputeStats()

	if r.Stats.Hashed == 0 {
		return nil, fmt.Errorf("%w: %d of %d", ErrAllFailed, r.Stats.Failed, len(sources))
	}
	if r.Stats.Failed > 0 {
		b.log.Warnf("%d of %d images had errors", r.Stats.Failed, len(sources))
	}
	b.log.WithFields(logrus.Fields{
		"hashed":           r.Stats.Hashed,
		"exact_duplicates": r.Stats.ExactDuplicates,
	}).Info("batch complete")
	return r, nil
}
