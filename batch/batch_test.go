package batch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/dupimg/imghash"
	"github.com/AnyUserName/dupimg/sampler"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRun_Fixtures(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	b := New(Config{InputDir: dir, Profile: GetProfile("full"), Workers: 2, Logger: quietLogger()})
	r, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if r.Stats.Hashed != 7 || r.Stats.Failed != 0 {
		t.Fatalf("stats: %+v", r.Stats)
	}
	if r.Stats.ExactDuplicates != 1 {
		t.Errorf("exact duplicates: got %d, want 1", r.Stats.ExactDuplicates)
	}
	if r.Workers != 2 {
		t.Errorf("workers: got %d", r.Workers)
	}

	for key, e := range r.Entries {
		if len(e.Hashes) != len(imghash.Algorithms()) {
			t.Errorf("%s: %d hashes, want %d", key, len(e.Hashes), len(imghash.Algorithms()))
		}
		if len(e.ContentHash) != 16 {
			t.Errorf("%s: content hash %q", key, e.ContentHash)
		}
	}

	// Byte-identical files share every fingerprint.
	orig, cp := r.Entries["cards/card-1"], r.Entries["cards/copy"]
	if orig.ContentHash != cp.ContentHash {
		t.Errorf("copy content hash: %s vs %s", orig.ContentHash, cp.ContentHash)
	}
	for _, alg := range imghash.Algorithms() {
		sim, err := r.Similarity("cards/card-1", "cards/copy", alg)
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		if sim != 1 {
			t.Errorf("%s: copy similarity %v, want 1", alg, sim)
		}
	}

	// Lossy re-encoding of a smooth gradient keeps its structure.
	sim, err := r.Similarity("banner", "banner-lossless", imghash.Difference64)
	if err != nil {
		t.Fatal(err)
	}
	if sim < 0.9 {
		t.Errorf("jpeg vs png banner similarity %.3f", sim)
	}
}

func TestRun_FastProfileWithNfnt(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	s, err := sampler.ByName("nfnt")
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(Config{InputDir: dir, Profile: GetProfile("fast"), Sampler: s, Logger: quietLogger()}).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	e := r.Entries["logo"]
	if len(e.Hashes) != 2 {
		t.Fatalf("fast profile: got %v", e.Hashes)
	}
	if _, ok := e.Hashes[string(imghash.Average64)]; !ok {
		t.Error("average64 missing")
	}
	if r.Profile != "fast" || len(r.Algorithms) != 2 {
		t.Errorf("report profile %q algorithms %v", r.Profile, r.Algorithms)
	}
}

func TestRun_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "good.png"), gradient(64, 64))
	writeFile(t, filepath.Join(dir, "broken.png"), []byte("\x89PNG but not really"))

	logger, hook := test.NewNullLogger()
	r, err := New(Config{InputDir: dir, Workers: 1, Logger: logger}).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Stats.Hashed != 1 || r.Stats.Failed != 1 || r.Stats.TotalFiles != 2 {
		t.Fatalf("stats: %+v", r.Stats)
	}
	if r.Failures[0].Path != "broken.png" {
		t.Errorf("failure path: %q", r.Failures[0].Path)
	}

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "image skipped" && e.Data["file"] == "broken.png" {
			warned = true
		}
	}
	if !warned {
		t.Error("no warning logged for broken.png")
	}
}

func TestRun_AllFailed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"), []byte("nope"))
	writeFile(t, filepath.Join(dir, "b.jpg"), []byte("nope"))

	_, err := New(Config{InputDir: dir, Logger: quietLogger()}).Run(context.Background())
	if !errors.Is(err, ErrAllFailed) {
		t.Errorf("got %v, want ErrAllFailed", err)
	}
}

func TestRun_NoImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "readme.md"), []byte("# empty"))

	_, err := New(Config{InputDir: dir, Logger: quietLogger()}).Run(context.Background())
	if !errors.Is(err, ErrNoImages) {
		t.Errorf("got %v, want ErrNoImages", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Config{InputDir: dir, Logger: quietLogger()}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRun_UnreadableDir(t *testing.T) {
	_, err := New(Config{InputDir: filepath.Join(t.TempDir(), "missing"), Logger: quietLogger()}).Run(context.Background())
	if err == nil || errors.Is(err, ErrNoImages) {
		t.Errorf("got %v, want scan error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("scan error should wrap os.ErrNotExist, got %v", err)
	}
}
