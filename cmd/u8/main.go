// Command u8 exposes the codec on the command line.
//
// Usage:
//
//	u8 escape [--quotes] [TEXT...]
//	u8 unescape [TEXT...]
//	u8 count TEXT
//	u8 inspect TEXT
//	u8 find TEXT CHAR
//	u8 locale [NAME]
//	u8 version
//
// escape and unescape read standard input when no TEXT is given.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
	"golang.org/x/term"
	"golang.org/x/text/transform"

	u8 "github.com/42atomys/go-u8codec"
)

const version = "0.1.0"

// CLI defines the command-line interface for u8.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Escape   EscapeCmd   `cmd:"" help:"Escape text into printable form"`
	Unescape UnescapeCmd `cmd:"" help:"Expand backslash escapes"`
	Count    CountCmd    `cmd:"" help:"Count characters and bytes"`
	Inspect  InspectCmd  `cmd:"" help:"List every character with its offsets"`
	Find     FindCmd     `cmd:"" help:"Find a character in text"`
	Locale   LocaleCmd   `cmd:"" help:"Report whether a locale name selects UTF-8"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// Env carries the process streams into commands.
type Env struct {
	Stdin         io.Reader
	Stdout        io.Writer
	StdinTerminal bool
}

var errNoInput = errors.New("no text given and stdin is a terminal")

// transformInput writes args through t, or stdin when args is empty.
func (e *Env) transformInput(args []string, t transform.Transformer) error {
	if len(args) > 0 {
		out, _, err := transform.String(t, strings.Join(args, " "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.Stdout, out)
		return err
	}
	if e.StdinTerminal {
		return errNoInput
	}
	if _, err := io.Copy(e.Stdout, transform.NewReader(e.Stdin, t)); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

// EscapeCmd escapes text.
type EscapeCmd struct {
	Quotes bool     `short:"q" help:"Escape double quotes too"`
	Text   []string `arg:"" optional:"" help:"Text to escape"`
}

func (c *EscapeCmd) Run(env *Env) error {
	return env.transformInput(c.Text, u8.NewEscaper(c.Quotes))
}

// UnescapeCmd expands escapes.
type UnescapeCmd struct {
	Text []string `arg:"" optional:"" help:"Text to unescape"`
}

func (c *UnescapeCmd) Run(env *Env) error {
	return env.transformInput(c.Text, u8.NewUnescaper())
}

// CountCmd counts characters.
type CountCmd struct {
	Text string `arg:"" help:"Text to measure"`
}

func (c *CountCmd) Run(env *Env) error {
	_, err := u8.NewPrinter(env.Stdout).Printf("%d chars, %d bytes\n",
		u8.LenString(c.Text), len(c.Text))
	return err
}

// InspectCmd lists characters.
type InspectCmd struct {
	Text string `arg:"" help:"Text to inspect"`
}

func (c *InspectCmd) Run(env *Env) error {
	p := u8.NewPrinter(env.Stdout)
	if _, err := p.Printf("%-6s %-6s %-4s %-10s %-12s %s\n",
		"INDEX", "OFFSET", "LEN", "CODEPOINT", "ESCAPED", "WIDTH"); err != nil {
		return err
	}

	s := []byte(c.Text)
	for i, idx := 0, 0; i < len(s); idx++ {
		cp, next := u8.NextRune(s, i)
		if next == i {
			// Embedded zero byte.
			next = i + 1
		}
		width := 0
		if cp <= u8.MaxRune {
			width = runewidth.RuneWidth(rune(cp))
		}
		if _, err := p.Printf("%-6d %-6d %-4d U+%-8.4X %-12s %d\n",
			idx, i, next-i, cp, u8.EscapeRune(cp), width); err != nil {
			return err
		}
		i = next
	}
	return nil
}

// FindCmd locates a character.
type FindCmd struct {
	Text string `arg:"" help:"Text to search"`
	Char string `arg:"" help:"Character to find, literally or as an escape sequence"`
}

func (c *FindCmd) Run(env *Env) error {
	target := u8.Unescape([]byte(c.Char))
	cp, _ := u8.NextRune(target, 0)
	if cp == 0 {
		return errors.New("empty character")
	}

	off, idx := u8.StrIndex([]byte(c.Text), cp)
	if off == u8.NotFound {
		return fmt.Errorf("%s not found in %d chars", u8.EscapeRune(cp), idx)
	}
	_, err := fmt.Fprintf(env.Stdout, "char %d, byte %d\n", idx, off)
	return err
}

// LocaleCmd checks a locale name.
type LocaleCmd struct {
	Name string `arg:"" optional:"" help:"Locale name (default: $LC_ALL, then $LANG)"`
}

func (c *LocaleCmd) Run(env *Env) error {
	name := c.Name
	if name == "" {
		name = os.Getenv("LC_ALL")
	}
	if name == "" {
		name = os.Getenv("LANG")
	}
	_, err := fmt.Fprintf(env.Stdout, "%s: utf8=%t\n", name, u8.IsLocaleUTF8(name))
	return err
}

type VersionCmd struct{}

func (c *VersionCmd) Run(env *Env) error {
	_, err := fmt.Fprintf(env.Stdout, "u8 version %s\n", version)
	return err
}

// run parses args and executes the selected command.
func run(args []string, env *Env, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("u8"),
		kong.Description("UTF-8 codec tools"),
		kong.UsageOnError(),
		kong.Writers(env.Stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck
		u8.SetLogger(logger)
	}

	return ctx.Run(env)
}

func main() {
	env := &Env{
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		StdinTerminal: term.IsTerminal(int(os.Stdin.Fd())),
	}
	if err := run(os.Args[1:], env, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
