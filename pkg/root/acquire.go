// pkg/root/acquire.go
package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"

	"github.com/arc-language/eclbuild/internal/ctxlog"
)

// EnvVar names the variable that holds the ECLiPSe installation root
const EnvVar = "ECLIPSEDIR"

const (
	// Prompt is written before every interactive read
	Prompt = "ECLIPSEDIR environmental variable is not defined \nplease provide path to ECLiPSe installation: "
	// InvalidPath is written after a supplied path fails the existence check
	InvalidPath = "Invalid Path"
)

var (
	// ErrRootNotDefined indicates ECLIPSEDIR is unset and prompting is disabled
	ErrRootNotDefined = errors.New(EnvVar + " is not defined")

	// ErrAttemptsExhausted indicates the operator used up every prompt attempt
	ErrAttemptsExhausted = errors.New("no valid installation path supplied")

	// ErrInputClosed indicates the prompt input ended before a valid path was read
	ErrInputClosed = errors.New("prompt input closed")
)

// LookupFunc reads a variable, reporting whether it is set
type LookupFunc func(key string) (string, bool)

// ExistsFunc reports whether a filesystem path exists
type ExistsFunc func(ctx context.Context, path string) (bool, error)

// Acquirer resolves the ECLiPSe installation root.
//
// A non-empty ECLIPSEDIR is returned as is. Otherwise, when Interactive is
// set, the operator is prompted on Out and answers are read from In until an
// existing path is supplied, MaxAttempts answers were rejected (0 means no
// limit), In is exhausted or ctx is done.
type Acquirer struct {
	Lookup      LookupFunc
	Exists      ExistsFunc
	In          io.Reader
	Out         io.Writer
	Interactive bool
	MaxAttempts int
}

// Acquire returns the installation root
func (a *Acquirer) Acquire(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)

	lookup := a.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if dir, ok := lookup(EnvVar); ok && dir != "" {
		logger.Debug("installation root from environment", "root", dir)
		return dir, nil
	}

	if !a.Interactive || a.In == nil {
		return "", ErrRootNotDefined
	}

	return a.prompt(ctx)
}

type line struct {
	text string
	err  error
}

func (a *Acquirer) prompt(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)

	exists := a.Exists
	if exists == nil {
		exists = PathExists
	}
	out := a.Out
	if out == nil {
		out = io.Discard
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(a.In, done)

	for attempt := 1; ; attempt++ {
		fmt.Fprint(out, Prompt)

		var l line
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case l = <-lines:
		}
		if l.err != nil {
			return "", l.err
		}

		dir := strings.TrimSpace(l.text)
		if dir != "" {
			ok, err := exists(ctx, dir)
			if err != nil {
				logger.Debug("checking installation root", "path", dir, "error", err)
			}
			if ok {
				logger.Debug("installation root from prompt", "root", dir, "attempt", attempt)
				return dir, nil
			}
		}

		fmt.Fprintln(out, InvalidPath)
		if a.MaxAttempts > 0 && attempt >= a.MaxAttempts {
			return "", fmt.Errorf("%w after %d attempts", ErrAttemptsExhausted, attempt)
		}
	}
}

// readLines feeds lines from r until it is exhausted or done is closed.
// A read blocked in r outlives done until r yields.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	lines := make(chan line)
	go func() {
		// bufio.Reader has no line length limit, so an overlong answer is
		// rejected like any other invalid path
		reader := bufio.NewReader(r)
		for {
			text, err := reader.ReadString('\n')
			if text != "" || err == nil {
				select {
				case lines <- line{text: strings.TrimRight(text, "\r\n")}:
				case <-done:
					return
				}
			}
			if err != nil {
				if err == io.EOF {
					err = ErrInputClosed
				}
				select {
				case lines <- line{err: err}:
				case <-done:
				}
				return
			}
		}
	}()
	return lines
}

// PathExists checks a local path through afs
func PathExists(ctx context.Context, path string) (bool, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return false, err
		}
		path = strings.TrimRight(wd, string(filepath.Separator)) + string(filepath.Separator) + path
	}
	return afs.New().Exists(ctx, path)
}
