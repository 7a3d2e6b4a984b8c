package query

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vecext/internal/logger"
)

// Batch is a list of queries, usually loaded from a YAML file:
//
//	name: sample
//	queries:
//	  - {op: shorter, a: "1,2", b: "3,4"}
//	  - {op: direction-normalized, a: [1, 1, 1], b: [4, 1, 1]}
type Batch struct {
	Name    string  `yaml:"name,omitempty"`
	Queries []Query `yaml:"queries"`
}

// FileResult holds the results of one batch file, in query order.
type FileResult struct {
	Path    string   `yaml:"file"`
	Name    string   `yaml:"name,omitempty"`
	Results []Result `yaml:"results"`
}

// Failed returns how many queries in the file could not be evaluated.
func (f FileResult) Failed() int {
	n := 0
	for _, r := range f.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}

// ParseBatch decodes a batch from YAML.
func ParseBatch(data []byte) (*Batch, error) {
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadBatch reads a batch file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := ParseBatch(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return b, nil
}

// Run evaluates every query in order. Failed queries are recorded in their
// Result rather than stopping the batch.
func (b *Batch) Run() []Result {
	results := make([]Result, len(b.Queries))
	for i, q := range b.Queries {
		res, err := Evaluate(q)
		if err != nil {
			res.Error = err.Error()
		}
		results[i] = res
	}
	return results
}

// RunFiles loads and evaluates batch files concurrently, at most workers at a
// time. Output order matches paths. A file that cannot be loaded fails the run.
func RunFiles(ctx context.Context, paths []string, workers int) ([]FileResult, error) {
	if workers < 1 {
		workers = 1
	}
	log := logger.Named("batch")

	out := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			b, err := LoadBatch(path)
			if err != nil {
				return err
			}

			fr := FileResult{Path: path, Name: b.Name, Results: b.Run()}
			log.Debug("batch evaluated",
				zap.String("file", path),
				zap.Int("queries", len(fr.Results)),
				zap.Int("failed", fr.Failed()),
				zap.Duration("took", time.Since(start)))
			out[i] = fr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
