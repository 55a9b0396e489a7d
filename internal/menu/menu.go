// Package menu is the console front end of the timeline: it prints the menu,
// reads and normalises user input, calls the store and reports the outcome.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tweets-go/internal/timeline"
)

// Operations is what the menu needs from a timeline. *timeline.Store and
// *app.TweetsApp both satisfy it.
type Operations interface {
	Display(w io.Writer) error
	Select(id int) (int, error)
	Add(message string) (int, error)
	Adopt(pos int) error
	Edit(message string) error
	Like() error
	Delete() error
	Len() int
	Cap() int
	Selection() timeline.Selection
}

// Menu choices.
const (
	choiceDisplay = iota + 1
	choiceSelect
	choiceAdd
	choiceEdit
	choiceLike
	choiceDelete
	choiceExit
)

const menuText = `1. Display Timeline
2. Select Tweet
3. Add New Tweet
4. Edit Selected Tweet
5. Like Selected Tweet
6. Delete Tweet
7. Exit

`

// Menu runs the interactive loop against a set of Operations.
type Menu struct {
	ops     Operations
	in      *bufio.Reader
	out     io.Writer
	prompts bool
}

// Option configures a Menu.
type Option func(*Menu)

// WithPrompts controls whether the menu listing and input prompts are
// printed. Results and error messages are always printed.
func WithPrompts(enabled bool) Option {
	return func(m *Menu) { m.prompts = enabled }
}

// New creates a Menu reading from in and writing to out.
func New(ops Operations, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		ops:     ops,
		in:      bufio.NewReader(in),
		out:     out,
		prompts: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run loops until the user exits, the input ends or ctx is cancelled.
// End of input is treated like Exit. Cancellation also interrupts a pending
// read; the menu must not be used again afterwards.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.prompt(menuText)
		choice, err := m.readInt(ctx, "Select: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case choiceDisplay:
			err = m.ops.Display(m.out)
		case choiceSelect:
			err = m.doSelect(ctx)
		case choiceAdd:
			err = m.doAdd(ctx)
		case choiceEdit:
			err = m.doEdit(ctx)
		case choiceLike:
			err = m.report(m.ops.Like())
		case choiceDelete:
			err = m.report(m.ops.Delete())
		case choiceExit:
			return nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) doSelect(ctx context.Context) error {
	if m.ops.Len() == 0 {
		return m.report(timeline.ErrEmpty)
	}

	id, err := m.readInt(ctx, "Enter ID of Tweet to select: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out)

	pos, err := m.ops.Select(id)
	if err != nil {
		return m.report(err)
	}
	return m.ops.Adopt(pos)
}

func (m *Menu) doAdd(ctx context.Context) error {
	if m.ops.Len() >= m.ops.Cap() {
		return m.report(timeline.ErrFull)
	}

	msg, err := m.readLine(ctx, "Enter a Tweet: \n")
	if err != nil {
		return err
	}

	pos, err := m.ops.Add(msg)
	if err != nil {
		return m.report(err)
	}
	return m.ops.Adopt(pos)
}

func (m *Menu) doEdit(ctx context.Context) error {
	if m.ops.Selection().IsNone() {
		return m.report(timeline.ErrNoSelection)
	}

	msg, err := m.readLine(ctx, "Enter a new Tweet: \n")
	if err != nil {
		return err
	}
	return m.report(m.ops.Edit(msg))
}

// report prints the message for an expected store failure. Any other error is
// returned to the caller.
func (m *Menu) report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, timeline.ErrFull):
		fmt.Fprintln(m.out, "ERROR: Timeline is full.")
	case errors.Is(err, timeline.ErrEmpty):
		fmt.Fprintln(m.out, "Timeline is empty.")
	case errors.Is(err, timeline.ErrNotFound):
		fmt.Fprintln(m.out, "ID was not found")
	case errors.Is(err, timeline.ErrNoSelection):
		fmt.Fprintln(m.out, "No tweet is selected.")
	default:
		return err
	}
	return nil
}

func (m *Menu) prompt(text string) {
	if m.prompts {
		fmt.Fprint(m.out, text)
	}
}

type readResult struct {
	line string
	err  error
}

// readLine prints prompt and returns the next input line without its line
// ending. A final line without a newline is returned before io.EOF.
// The read runs in its own goroutine so ctx can interrupt it; on
// cancellation that goroutine stays blocked until the input yields.
func (m *Menu) readLine(ctx context.Context, prompt string) (string, error) {
	m.prompt(prompt)

	ch := make(chan readResult, 1)
	go func() {
		line, err := m.in.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	var r readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r = <-ch:
	}

	if r.err != nil {
		if errors.Is(r.err, io.EOF) && r.line != "" {
			return strings.TrimRight(r.line, "\r\n"), nil
		}
		return "", r.err
	}
	return strings.TrimRight(r.line, "\r\n"), nil
}

// readInt keeps prompting until a line holds a single integer.
func (m *Menu) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := m.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			return n, nil
		}
	}
}
