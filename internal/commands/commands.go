package commands

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"
)

const prefix = "cmd "

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token of a line (e.g. "jump").
// fs is that command's FlagSet; run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name string, fs *flag.FlagSet, run func() error) {
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, FlagSet: fs, Run: run}
}

// Names returns the registered subcommands in no particular order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	return out
}

// Parse interprets line as a terminal line. A leading "cmd " is optional; the rest is
// tokenized by spaces. ok is false for blank lines.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line+" ", prefix) {
		line = strings.TrimSpace(line[len(prefix)-1:])
	}
	if line == "" {
		return nil, false
	}
	return strings.Fields(line), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	// Flag values persist between runs of the same set.
	cmd.FlagSet.VisitAll(func(f *flag.Flag) { _ = f.Value.Set(f.DefValue) })
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run()
}

// ExecuteLine parses and runs one terminal line. Blank lines are ignored.
func (r *Registry) ExecuteLine(line string) error {
	args, ok := Parse(line)
	if !ok {
		return nil
	}
	return r.Execute(args)
}

// ReadLines sends each line of r on the returned channel and closes it at EOF. The loop drains
// it between frames so commands run on the draw thread.
func ReadLines(r io.Reader) <-chan string {
	ch := make(chan string, 16)
	go func() {
		defer close(ch)
		s := bufio.NewScanner(r)
		for s.Scan() {
			ch <- s.Text()
		}
	}()
	return ch
}
