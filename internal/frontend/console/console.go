// Package console is the terminal frontend: it renders engine events and reads
// player input line by line.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/internal/engine"
	"github.com/cory-johannsen/dungeon/internal/game/command"
)

// ErrInputClosed is returned once the input stream has ended.
var ErrInputClosed = errors.New("console: input closed")

type line struct {
	text string
	err  error
}

// Console implements engine.Prompter and engine.Notifier on a line-oriented
// terminal. Requests for items, map and help are answered locally at any
// prompt and never reach the engine.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	render   *renderer
	commands *command.Registry
	logger   *zap.Logger

	mu       sync.Mutex
	start    sync.Once
	lines    chan line
	inputErr error
}

// New creates a Console reading from in and writing to out.
//
// Precondition: in, out and logger must be non-nil; cfg.Width should be >= 20.
func New(in io.Reader, out io.Writer, cfg config.ConsoleConfig, logger *zap.Logger) *Console {
	return &Console{
		in:       bufio.NewReaderSize(in, 4096),
		out:      out,
		render:   newRenderer(newPalette(out, cfg.Color), cfg.Width),
		commands: command.DefaultRegistry(),
		logger:   logger,
		lines:    make(chan line),
	}
}

// Banner prints the title art.
func (c *Console) Banner() {
	c.write(c.render.banner())
	c.write(c.render.help())
}

// Notify renders e.
func (c *Console) Notify(e engine.Event) {
	if out := c.render.event(e); out != "" {
		c.write(out)
	}
}

// Choose shows p and returns the first line that is not an info request.
func (c *Console) Choose(ctx context.Context, p engine.Prompt) (string, error) {
	return c.read(ctx, p.Message, p.Options, p.Snapshot)
}

// Ask shows message and returns the first line that is not an info request.
func (c *Console) Ask(ctx context.Context, message string) (string, error) {
	return c.read(ctx, message, nil, engine.Snapshot{})
}

func (c *Console) read(ctx context.Context, message string, options []string, snap engine.Snapshot) (string, error) {
	for {
		c.writeRaw(c.render.prompt(message, options))
		text, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		if cmd, ok := c.commands.Resolve(text); ok && !cmd.IsControl() {
			c.info(cmd, snap)
			continue
		}
		return text, nil
	}
}

func (c *Console) info(cmd *command.Command, snap engine.Snapshot) {
	switch cmd.Handler {
	case command.HandlerItems:
		c.write(c.render.items(snap.Items))
	case command.HandlerMap:
		c.write(c.render.pal.art.Render(mapArt(snap.Path)))
	case command.HandlerHelp:
		c.write(c.render.help())
	default:
		c.logger.Debug("unhandled info command", zap.String("command", cmd.Name))
	}
}

// readLine waits for the next input line or for ctx to end.
//
// Postcondition: after the input ends every call returns ErrInputClosed.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if c.inputErr != nil {
		return "", c.inputErr
	}
	c.start.Do(func() { go c.readLoop() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-c.lines:
		if l.err != nil {
			if !errors.Is(l.err, io.EOF) {
				c.logger.Warn("reading input", zap.Error(l.err))
			}
			c.inputErr = fmt.Errorf("%w: %w", ErrInputClosed, l.err)
			return "", c.inputErr
		}
		return l.text, nil
	}
}

// readLoop feeds c.lines until the input fails. It is the only goroutine
// reading c.in.
func (c *Console) readLoop() {
	for {
		raw, err := c.in.ReadString('\n')
		if raw != "" {
			c.lines <- line{text: sanitize(raw)}
		}
		if err != nil {
			c.lines <- line{err: err}
			return
		}
	}
}

// sanitize drops the line terminator and control characters other than tab.
func sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r < 32 && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (c *Console) write(s string) {
	c.writeRaw("\n" + s + "\n")
}

func (c *Console) writeRaw(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.out, s); err != nil {
		c.logger.Debug("writing output", zap.Error(err))
	}
}
