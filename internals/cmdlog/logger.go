// Package cmdlog prints categorized, colored status lines to the terminal.
// Every user visible message of a run goes through one of its categories so
// warnings and errors stay distinguishable from plain progress output.
package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jwalton/gchalk"
)

// Logger logs pretty stuff to the console
type Logger struct {
	out       io.Writer
	emojis    bool
	indention int
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Fprintln(l.out, strings.Repeat(" ", l.indention)+a)
}

// printEmoji prints string e only when emojis are enabled
func (l *Logger) printEmoji(e string) {
	if l.emojis {
		fmt.Fprint(l.out, e+" ")
	}
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e
	}
	return ""
}

// Headline prints a cyan headline with an underline
func (l *Logger) Headline(s string) {
	fmt.Fprintln(l.out, gchalk.WithBold().Cyan(">> "+s))
	fmt.Fprintln(l.out, gchalk.Cyan(strings.Repeat("-", 50)))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(gchalk.Blue("[i] ") + s)
}

// Log prints a dimmed line
func (l *Logger) Log(s string) {
	l.println(gchalk.Dim(s))
}

// Success prints a green line
func (l *Logger) Success(s string) {
	l.println(gchalk.Green("[+] ") + s)
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	l.printEmoji("⚠️ ")
	l.println(gchalk.WithBold().Yellow("[!] " + s))
}

// Fail will print the given message and then exit 1
func (l *Logger) Fail(s string) {
	l.printEmoji("💣")
	fmt.Fprint(l.out, gchalk.WithBold().Red("Error: "))
	fmt.Fprintln(l.out, gchalk.Bold(s))
	os.Exit(1)
}

// NewTask returns a new Task logger
func (l *Logger) NewTask(end int) *Task {
	logger := *l
	return &Task{&logger, 0, end}
}

// New returns a new Logger writing to stdout
func New() *Logger {
	return NewTo(os.Stdout)
}

// NewTo returns a new Logger writing to out
func NewTo(out io.Writer) *Logger {
	emojis := runtime.GOOS != "windows"

	if os.Getenv("CI") != "" {
		emojis = false
		gchalk.SetLevel(gchalk.LevelNone)
	}
	return &Logger{out: out, emojis: emojis}
}

// DisableColors turns all color output off
func DisableColors() {
	gchalk.SetLevel(gchalk.LevelNone)
}

// Task logs but with progress
type Task struct {
	*Logger
	current int
	end     int
}

// Step prints progress
func (l *Task) Step(e string, s string) {
	l.current++
	text := gchalk.Cyan(fmt.Sprintf(
		"[%d / %d] %s %s",
		l.current,
		l.end,
		l.sprintEmoji(e),
		s,
	))

	// step headlines have no indentation
	fmt.Fprintln(l.out, text)
}
