package argbind

import (
	"math"
	"sort"
	"strconv"

	"github.com/rickgorman/argbind/internal/ui"
)

// Args holds the plain arguments attached to a command on the command
// line, in the order they appeared.
type Args []string

// Action is the callback bound to a registered command. Returned errors
// abort Run and surface to its caller.
type Action func(args Args) error

const (
	// ArityAny disables argument-count checking for a command.
	ArityAny = -1

	// PriorityLowest is the default execution priority. Commands left at
	// the default run after every explicitly prioritized command, in
	// command-line order.
	PriorityLowest = math.MinInt
)

// command is one registered binding: primary name, optional alias,
// callback, declared arity, and execution priority.
type command struct {
	name     string
	alias    string
	fn       Action
	arity    int
	priority int
}

// Option configures a command at registration time.
type Option func(*command)

// Alias registers a second name resolving to the same command.
func Alias(name string) Option {
	return func(c *command) { c.alias = name }
}

// Arity declares the exact number of arguments the command expects.
// Fewer arguments at parse time is an error; more is a warning, with
// all arguments still passed through. Negative values mean ArityAny.
func Arity(n int) Option {
	return func(c *command) { c.arity = n }
}

// Priority sets the execution priority. Higher priorities run earlier
// during Run.
func Priority(p int) Option {
	return func(c *command) { c.priority = p }
}

// task is a deferred action: a command's callback bound to the
// arguments of one token, ready to execute.
type task struct {
	run      func() error
	priority int
}

// CLI binds registered commands to a parsed argument vector. The
// lifecycle is strict: register, Parse once, then Run. A CLI is not
// safe for concurrent use.
type CLI struct {
	// Warnf receives non-fatal diagnostics (unrecognized tokens,
	// discarded arguments, excess-argument notices). Defaults to a
	// colored WARNING line on stderr.
	Warnf func(format string, args ...any)

	cmds    map[string]*command
	aliases map[string]string
	tasks   []task
	parsed  bool
}

// New returns an empty CLI ready for registration.
func New() *CLI {
	return &CLI{
		Warnf:   ui.Warn,
		cmds:    make(map[string]*command),
		aliases: make(map[string]string),
	}
}

// AddCmd registers fn under name. Options set an alias, an expected
// arity, and a priority; the defaults are no alias, ArityAny, and
// PriorityLowest. AddCmd panics with *UsageError if called after Parse
// or if name or alias collides with any registered name or alias.
// Returns c for chaining.
func (c *CLI) AddCmd(name string, fn Action, opts ...Option) *CLI {
	c.mustBeUnparsed("AddCmd")
	cmd := &command{name: name, fn: fn, arity: ArityAny, priority: PriorityLowest}
	for _, opt := range opts {
		opt(cmd)
	}
	c.mustBeFree("AddCmd", name)
	if cmd.alias != "" {
		c.mustBeFree("AddCmd", cmd.alias)
	}
	c.cmds[name] = cmd
	if cmd.alias != "" {
		c.aliases[cmd.alias] = name
	}
	return c
}

// AddValue registers a one-argument command that converts its argument
// to T, validates it with restrict, and assigns it through dst. A nil
// restrict accepts everything. Conversion and restriction failures
// surface as errors from Run and leave *dst untouched. Returns c for
// chaining.
func AddValue[T Value](c *CLI, name string, dst *T, restrict Restrictor[T], opts ...Option) *CLI {
	if restrict == nil {
		restrict = Always[T]()
	}
	fn := func(args Args) error {
		v, err := convert[T](args[0])
		if err != nil {
			return err
		}
		if !restrict(v) {
			return &InvalidValueError{Raw: args[0]}
		}
		*dst = v
		return nil
	}
	opts = append(opts, Arity(1))
	return c.AddCmd(name, fn, opts...)
}

// AddOption registers a zero-argument command that sets *dst to true
// when present on the command line. Returns c for chaining.
func (c *CLI) AddOption(name string, dst *bool, opts ...Option) *CLI {
	fn := func(Args) error {
		*dst = true
		return nil
	}
	opts = append(opts, Arity(0))
	return c.AddCmd(name, fn, opts...)
}

// Parse tokenizes argv (argv[0] is the program identity), expands
// short-flag clusters, resolves each token against registered names and
// aliases, and defers one action per match. Unrecognized tokens are
// discarded with warnings. A command given fewer arguments than its
// arity fails Parse with *ArityError and leaves the CLI unparsed; no
// partial task list is installed.
//
// Deferred actions are ordered by descending priority with a stable
// sort, so equal priorities keep their command-line order. Parse may be
// called once; a second call panics with *UsageError.
func (c *CLI) Parse(argv []string) error {
	if c.parsed {
		panic(&UsageError{Op: "Parse", Detail: "already parsed"})
	}
	if len(argv) == 0 {
		panic(&UsageError{Op: "Parse", Detail: "empty argument vector"})
	}

	tokens := c.expandClusters(tokenize(argv))

	var tasks []task
	for _, t := range tokens[1:] {
		cmd, ok := c.resolve(t.name)
		if !ok {
			c.Warnf("unrecognized option %q", t.name)
			for _, a := range t.args {
				c.Warnf("discarded argument %q", a)
			}
			continue
		}
		bound, err := c.pack(cmd, t.args)
		if err != nil {
			return err
		}
		tasks = append(tasks, bound)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].priority > tasks[j].priority
	})

	c.tasks = tasks
	c.parsed = true
	return nil
}

// Run executes every deferred action in priority order and returns the
// first error, leaving later actions unexecuted. Running before Parse
// panics with *UsageError.
//
// Run has no single-shot guard: calling it again re-executes every
// action. This is intentional, so a caller can replay the parsed
// command line.
func (c *CLI) Run() error {
	if !c.parsed {
		panic(&UsageError{Op: "Run", Detail: "Parse has not been called"})
	}
	for _, t := range c.tasks {
		if err := t.run(); err != nil {
			return err
		}
	}
	return nil
}

// resolve looks name up as a primary name, then as an alias.
func (c *CLI) resolve(name string) (*command, bool) {
	if cmd, ok := c.cmds[name]; ok {
		return cmd, true
	}
	if primary, ok := c.aliases[name]; ok {
		return c.cmds[primary], true
	}
	return nil, false
}

// pack checks args against cmd's arity and binds them into a deferred
// task. Too few arguments is an error; too many is a warning, with the
// full argument list still passed to the action.
func (c *CLI) pack(cmd *command, args []string) (task, error) {
	if cmd.arity >= 0 {
		if len(args) < cmd.arity {
			return task{}, &ArityError{Command: cmd.name, Want: cmd.arity, Got: len(args)}
		}
		if len(args) > cmd.arity {
			c.Warnf("%s: expected %d argument(s), got %d", cmd.name, cmd.arity, len(args))
		}
	}
	bound := Args(args)
	return task{
		run:      func() error { return cmd.fn(bound) },
		priority: cmd.priority,
	}, nil
}

// mustBeUnparsed panics if registration happens after Parse.
func (c *CLI) mustBeUnparsed(op string) {
	if c.parsed {
		panic(&UsageError{Op: op, Detail: "registration after Parse"})
	}
}

// mustBeFree panics if name exists in either the primary or the alias
// namespace. The two namespaces are kept pairwise disjoint.
func (c *CLI) mustBeFree(op, name string) {
	if _, ok := c.cmds[name]; ok {
		panic(&UsageError{Op: op, Detail: "duplicate name " + strconv.Quote(name)})
	}
	if _, ok := c.aliases[name]; ok {
		panic(&UsageError{Op: op, Detail: "duplicate name " + strconv.Quote(name)})
	}
}
