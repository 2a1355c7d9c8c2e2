// Package batch builds element trees for many record dumps concurrently.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/bamlkit/baml"
	"github.com/dhamidi/bamlkit/stream"
)

// Status is the outcome of checking one file.
type Status string

const (
	StatusOK       Status = "ok"
	StatusFailed   Status = "failed"
	StatusTimeout  Status = "timeout"
	StatusCanceled Status = "canceled"
)

// Options configures Check.
type Options struct {
	// Workers bounds how many files are processed at once. Defaults to the
	// number of CPUs.
	Workers int
	// Timeout applies to each file separately. Zero means no limit.
	Timeout      time.Duration
	BuildOptions []baml.Option
	Logger       commonlog.Logger
}

// Result reports the outcome for one path. Stats is set only for StatusOK.
type Result struct {
	Path   string
	Status Status
	Stats  baml.Stats
	Err    error
	// Duration is how long Check waited for the file. For StatusTimeout it
	// equals the timeout, not the time the abandoned read went on to take.
	Duration time.Duration
}

// Extensions lists the file extensions Collect treats as record dumps.
var Extensions = []string{".json", ".records"}

// Collect expands directories into the record dumps they contain. Plain file
// arguments are kept as given, whatever their extension. The result is
// sorted within each directory.
func Collect(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isDump(p) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

func isDump(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Check reads and builds every path and returns one result per path in the
// same order. Failures are reported in the results, never as a panic or an
// early return.
func Check(ctx context.Context, paths []string, opts Options) []Result {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = commonlog.GetLogger("bamlkit.batch")
	}

	results := make([]Result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = checkFile(ctx, paths[i], opts)
				logResult(log, results[i])
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	s := Summarize(results)
	log.Infof("checked %d files: %d ok, %d failed, %d timed out, %d canceled",
		len(results), s[StatusOK], s[StatusFailed], s[StatusTimeout], s[StatusCanceled])
	return results
}

func checkFile(ctx context.Context, path string, opts Options) Result {
	res := Result{Path: path}
	if err := ctx.Err(); err != nil {
		res.Status = StatusCanceled
		res.Err = err
		return res
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	// Reading and building do not observe ctx. On timeout the goroutine
	// runs to completion in the background and its send lands in the buffer.
	done := make(chan Result, 1)

	go func() {
		r := Result{Path: path}
		records, err := stream.ReadFile(path)
		if err != nil {
			r.Status, r.Err = StatusFailed, err
			done <- r
			return
		}
		root, err := baml.Build(records, opts.BuildOptions...)
		if err != nil {
			r.Status, r.Err = StatusFailed, fmt.Errorf("%s: %w", path, err)
			done <- r
			return
		}
		r.Status = StatusOK
		r.Stats = baml.Summarize(root)
		done <- r
	}()

	select {
	case res = <-done:
	case <-ctx.Done():
		res.Err = ctx.Err()
		if errors.Is(res.Err, context.DeadlineExceeded) {
			res.Status = StatusTimeout
		} else {
			res.Status = StatusCanceled
		}
	}
	res.Duration = time.Since(start)
	return res
}

func logResult(log commonlog.Logger, r Result) {
	switch r.Status {
	case StatusOK:
		log.Debugf("%s: %d elements, %d unterminated (%s)", r.Path, r.Stats.Elements, r.Stats.Unterminated, r.Duration)
	case StatusFailed:
		log.Errorf("%s", r.Err)
	default:
		log.Warningf("%s: %s", r.Path, r.Status)
	}
}

// Summarize counts results by status.
func Summarize(results []Result) map[Status]int {
	counts := make(map[Status]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// Failed reports whether any result is not StatusOK.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status != StatusOK {
			return true
		}
	}
	return false
}
