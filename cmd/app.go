package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"taskman/internal/config"
	"taskman/internal/store"
)

// errCommandFailed marks a command that already logged its failure. The
// REPL keeps the session alive on it; one-shot invocations exit non-zero.
var errCommandFailed = errors.New("command failed")

// app holds the wiring shared by all command handlers: config, the task
// store, the logger, and the console streams the interactive prompts use.
type app struct {
	cfg    *config.Config
	store  store.TaskStore
	logger *log.Logger
	in     *bufio.Reader
	out    io.Writer

	readerOnce sync.Once
	lines      chan lineResult
}

type lineResult struct {
	text string
	err  error
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.OpTimeout())
	defer cancel()
	if err := a.store.Close(ctx); err != nil {
		a.logger.Debug("closing store", "err", err)
	}
}

// opCtx derives a context with the configured per-operation timeout.
func (a *app) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.cfg.OpTimeout())
}

// startReader launches the goroutine feeding console lines into the channel
// prompt selects on. A blocked stdin read cannot be cancelled, so the
// goroutine may outlive the session; it exits with the process.
func (a *app) startReader() {
	a.readerOnce.Do(func() {
		a.lines = make(chan lineResult)
		go func() {
			for {
				line, err := a.in.ReadString('\n')
				if err != nil {
					if t := strings.TrimSpace(line); t != "" {
						a.lines <- lineResult{text: t}
					}
					a.lines <- lineResult{err: err}
					return
				}
				a.lines <- lineResult{text: strings.TrimSpace(line)}
			}
		}()
	})
}

// prompt prints a label and reads one trimmed line from the console. It
// returns the context's error if the context ends before a line arrives.
func (a *app) prompt(ctx context.Context, label string) (string, error) {
	a.startReader()
	fmt.Fprint(a.out, label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-a.lines:
		return res.text, res.err
	}
}

// confirm asks a y/N question and returns true only on an explicit yes.
func (a *app) confirm(ctx context.Context, label string) (bool, error) {
	answer, err := a.prompt(ctx, label)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}
