// Package checker validates files of FEN strings, one position per line.
package checker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"fenboard/pkg/fen"
)

// LineError describes one line that failed to parse.
type LineError struct {
	Line int
	FEN  string
	Err  error
}

func (e LineError) String() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Report summarizes a batch run. Errors are ordered by line number.
type Report struct {
	Total  int
	Bad    int
	Errors []LineError
}

func (r Report) OK() bool {
	return r.Bad == 0
}

type line struct {
	number int
	text   string
}

// CheckFile validates every FEN line of the named file.
func CheckFile(ctx context.Context, path string, workers int) (Report, error) {
	var file, err = os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer file.Close()
	return Check(ctx, file, workers)
}

// Check reads FEN lines from r and parses them on the given number of
// workers. Blank lines and lines starting with "#" are skipped.
func Check(ctx context.Context, r io.Reader, workers int) (Report, error) {
	if workers < 1 {
		workers = 1
	}

	var g, gctx = errgroup.WithContext(ctx)
	var lines = make(chan line, 128)
	var failures = make(chan LineError, 128)

	var total = 0
	g.Go(func() error {
		defer close(lines)
		var scanner = bufio.NewScanner(r)
		var number = 0
		for scanner.Scan() {
			number++
			var text = strings.TrimSpace(scanner.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			total++
			select {
			case lines <- line{number: number, text: text}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return scanner.Err()
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for ln := range lines {
				var _, err = fen.Parse(ln.text)
				if err == nil {
					continue
				}
				select {
				case failures <- LineError{Line: ln.number, FEN: ln.text, Err: err}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(failures)
		return nil
	})

	var collected []LineError
	for failure := range failures {
		collected = append(collected, failure)
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Line < collected[j].Line
	})
	return Report{Total: total, Bad: len(collected), Errors: collected}, nil
}
