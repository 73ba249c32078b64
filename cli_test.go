package argbind

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopAction(Args) error { return nil }

// requireUsagePanic asserts that fn panics with a *UsageError.
func requireUsagePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic with *UsageError")
		_, ok := r.(*UsageError)
		require.True(t, ok, "expected *UsageError, got %T: %v", r, r)
	}()
	fn()
}

func TestRegistrationChaining(t *testing.T) {
	var opt bool
	c := New()
	got := c.AddCmd("a", nopAction).AddOption("b", &opt)
	assert.Same(t, c, got)

	var n int
	assert.Same(t, c, AddValue(c, "n", &n, nil))
}

func TestDuplicateNamesPanic(t *testing.T) {
	t.Run("duplicate primary", func(t *testing.T) {
		c, _ := newSilentCLI()
		c.AddCmd("a", nopAction)
		requireUsagePanic(t, func() { c.AddCmd("a", nopAction) })
	})

	t.Run("primary colliding with alias", func(t *testing.T) {
		c, _ := newSilentCLI()
		c.AddCmd("a", nopAction, Alias("all"))
		requireUsagePanic(t, func() { c.AddCmd("all", nopAction) })
	})

	t.Run("alias colliding with primary", func(t *testing.T) {
		c, _ := newSilentCLI()
		c.AddCmd("a", nopAction)
		requireUsagePanic(t, func() { c.AddCmd("b", nopAction, Alias("a")) })
	})

	t.Run("duplicate alias", func(t *testing.T) {
		c, _ := newSilentCLI()
		c.AddCmd("a", nopAction, Alias("x"))
		requireUsagePanic(t, func() { c.AddCmd("b", nopAction, Alias("x")) })
	})
}

func TestLifecyclePanics(t *testing.T) {
	t.Run("registration after Parse", func(t *testing.T) {
		c, _ := newSilentCLI()
		c.AddCmd("a", nopAction)
		require.NoError(t, c.Parse([]string{"prog"}))
		requireUsagePanic(t, func() { c.AddCmd("b", nopAction) })
	})

	t.Run("Run before Parse", func(t *testing.T) {
		c, _ := newSilentCLI()
		c.AddCmd("a", nopAction)
		requireUsagePanic(t, func() { _ = c.Run() })
	})

	t.Run("second Parse", func(t *testing.T) {
		c, _ := newSilentCLI()
		require.NoError(t, c.Parse([]string{"prog"}))
		requireUsagePanic(t, func() { _ = c.Parse([]string{"prog"}) })
	})
}

func TestPriorityOrdering(t *testing.T) {
	var order []string
	record := func(name string) Action {
		return func(Args) error {
			order = append(order, name)
			return nil
		}
	}

	c, _ := newSilentCLI()
	c.AddCmd("lowcmd", record("low"), Priority(5))
	c.AddCmd("highcmd", record("high"), Priority(10))

	require.NoError(t, c.Parse([]string{"prog", "-lowcmd", "-highcmd"}))
	require.NoError(t, c.Run())
	assert.Equal(t, []string{"high", "low"}, order)
}

func TestEqualPrioritiesKeepCommandLineOrder(t *testing.T) {
	var order []string
	record := func(name string) Action {
		return func(Args) error {
			order = append(order, name)
			return nil
		}
	}

	c, _ := newSilentCLI()
	c.AddCmd("a", record("a"))
	c.AddCmd("b", record("b"))
	c.AddCmd("c", record("c"))

	require.NoError(t, c.Parse([]string{"prog", "-c", "-a", "-b"}))
	require.NoError(t, c.Run())
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestAliasResolution(t *testing.T) {
	var got Args
	c, _ := newSilentCLI()
	c.AddCmd("p", func(args Args) error {
		got = args
		return nil
	}, Alias("print"))

	require.NoError(t, c.Parse([]string{"prog", "--print", "x", "y"}))
	require.NoError(t, c.Run())
	assert.Equal(t, Args{"x", "y"}, got)
}

func TestUnrecognizedTokenIsDiscardedWithWarnings(t *testing.T) {
	ran := false
	c, warnings := newSilentCLI()
	c.AddCmd("a", func(Args) error {
		ran = true
		return nil
	})

	require.NoError(t, c.Parse([]string{"prog", "-bogus", "1", "2", "-a"}))
	require.NoError(t, c.Run())

	assert.True(t, ran, "registered command should still run")
	require.Len(t, *warnings, 3, "one for the token, one per discarded argument")
	assert.Contains(t, (*warnings)[0], "bogus")
}

func TestArityTooFewFailsParse(t *testing.T) {
	c, _ := newSilentCLI()
	c.AddCmd("pair", nopAction, Arity(2))

	err := c.Parse([]string{"prog", "-pair", "only"})
	require.Error(t, err)

	var ae *ArityError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "pair", ae.Command)
	assert.Equal(t, 2, ae.Want)
	assert.Equal(t, 1, ae.Got)

	// A failed Parse leaves the CLI unparsed.
	requireUsagePanic(t, func() { _ = c.Run() })
}

func TestArityExcessWarnsAndPassesEverything(t *testing.T) {
	var got Args
	c, warnings := newSilentCLI()
	c.AddCmd("one", func(args Args) error {
		got = args
		return nil
	}, Arity(1))

	require.NoError(t, c.Parse([]string{"prog", "-one", "a", "b", "c"}))
	require.NoError(t, c.Run())

	assert.Equal(t, Args{"a", "b", "c"}, got, "excess arguments are passed through, not truncated")
	require.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], "one")
}

func TestAddValueAssigns(t *testing.T) {
	var n int
	c, _ := newSilentCLI()
	AddValue(c, "n", &n, nil)

	require.NoError(t, c.Parse([]string{"prog", "-n", "17"}))
	require.NoError(t, c.Run())
	assert.Equal(t, 17, n)
}

func TestAddValueConversionFailureLeavesTargetUntouched(t *testing.T) {
	n := 42
	c, _ := newSilentCLI()
	AddValue(c, "n", &n, nil)

	require.NoError(t, c.Parse([]string{"prog", "-n", "x"}))
	err := c.Run()
	require.True(t, IsConversionError(err), "got %v", err)
	assert.Equal(t, 42, n, "failed conversion must not mutate the target")
}

func TestAddValueRestrictorRejection(t *testing.T) {
	ratio := 0.5
	c, _ := newSilentCLI()
	AddValue(c, "r", &ratio, Range(0.0, 1.0))

	require.NoError(t, c.Parse([]string{"prog", "-r", "1.0"}))
	err := c.Run()
	require.True(t, IsInvalidValueError(err), "got %v", err)

	var ie *InvalidValueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "1.0", ie.Raw)
	assert.Equal(t, 0.5, ratio, "rejected value must not mutate the target")
}

func TestAddValueWithAlias(t *testing.T) {
	var pick int
	c, _ := newSilentCLI()
	AddValue(c, "f", &pick, OneOf(1, 3, 5), Alias("oneof"))

	require.NoError(t, c.Parse([]string{"prog", "--oneof", "5"}))
	require.NoError(t, c.Run())
	assert.Equal(t, 5, pick)
}

func TestAddOption(t *testing.T) {
	var opt bool
	c, _ := newSilentCLI()
	c.AddOption("o", &opt, Alias("option"))

	require.NoError(t, c.Parse([]string{"prog", "--option"}))
	require.NoError(t, c.Run())
	assert.True(t, opt)
}

func TestClusterExecutesEachCommand(t *testing.T) {
	var a, b, c3 bool
	c, _ := newSilentCLI()
	c.AddOption("a", &a)
	c.AddOption("b", &b)
	c.AddOption("c", &c3)

	require.NoError(t, c.Parse([]string{"prog", "-abc"}))
	require.NoError(t, c.Run())
	assert.True(t, a && b && c3, "all clustered commands should execute")
}

func TestRunReexecutes(t *testing.T) {
	count := 0
	c, _ := newSilentCLI()
	c.AddCmd("tick", func(Args) error {
		count++
		return nil
	})

	require.NoError(t, c.Parse([]string{"prog", "-tick"}))
	require.NoError(t, c.Run())
	require.NoError(t, c.Run())
	assert.Equal(t, 2, count, "Run replays the parsed command line")
}

func TestActionErrorAbortsRun(t *testing.T) {
	ran := false
	c, _ := newSilentCLI()
	c.AddCmd("boom", func(Args) error {
		return errors.New("boom")
	}, Priority(10))
	c.AddCmd("later", func(Args) error {
		ran = true
		return nil
	})

	require.NoError(t, c.Parse([]string{"prog", "-later", "-boom"}))
	err := c.Run()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "boom"))
	assert.False(t, ran, "actions after the failing one must not execute")
}

func TestProgramIdentityCarriesNoCommand(t *testing.T) {
	// A program named like a registered command must not trigger it.
	ran := false
	c, _ := newSilentCLI()
	c.AddCmd("prog", func(Args) error {
		ran = true
		return nil
	})

	require.NoError(t, c.Parse([]string{"prog"}))
	require.NoError(t, c.Run())
	assert.False(t, ran)
}
