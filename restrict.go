package argbind

import (
	"cmp"
	"regexp"
	"slices"
)

// Restrictor validates a converted value before it is assigned into a
// value binding's target. Restrictors are pure predicates; they carry
// no state beyond their construction parameters.
type Restrictor[T any] func(T) bool

// Always accepts every value. Passing a nil restrictor to AddValue is
// equivalent.
func Always[T any]() Restrictor[T] {
	return func(T) bool { return true }
}

// Range accepts values in the half-open interval [lo, hi).
func Range[T cmp.Ordered](lo, hi T) Restrictor[T] {
	return func(v T) bool { return v >= lo && v < hi }
}

// OneOf accepts a value iff it equals one of allowed.
func OneOf[T comparable](allowed ...T) Restrictor[T] {
	return func(v T) bool { return slices.Contains(allowed, v) }
}

// Pattern accepts strings fully matched by expr. expr must be a valid
// regular expression; Pattern panics otherwise, like regexp.MustCompile.
func Pattern(expr string) Restrictor[string] {
	re := regexp.MustCompile(`\A(?:` + expr + `)\z`)
	return func(v string) bool { return re.MatchString(v) }
}

// Email is Pattern specialized to a permissive address grammar: word
// characters with dot, dash, or plus separated atoms, a host with at
// least one dot.
func Email() Restrictor[string] {
	return Pattern(`\w+([-+.]\w+)*@\w+([-.]\w+)*\.\w+([-.]\w+)*`)
}
