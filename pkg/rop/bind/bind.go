package bind

import (
	"fmt"

	"github.com/ib-77/roperrs/pkg/rop"
)

// Aggregator collects the outcome of every binding for one aggregate error type E.
type Aggregator[E any] struct {
	seed     []E
	errs     rop.Errors[E]
	names    []string
	resolved bool
	ok       bool
}

// New starts an aggregator. seed errors lead the error collection when any
// binding fails and are dropped when all bindings succeed.
func New[E any](seed ...E) *Aggregator[E] {
	return &Aggregator[E]{seed: seed}
}

// Binding is a named Result whose value becomes readable once the aggregator
// resolved successfully.
type Binding[T any] struct {
	name   string
	value  T
	failed bool
	ready  func() bool
}

// Bind records r under name. Failures are converted to E right away; the
// conversion must not fail.
func Bind[T, Ei, E any](a *Aggregator[E], name string, r rop.Result[T, Ei], convert func(Ei) E) *Binding[T] {
	if a.resolved {
		panic(fmt.Sprintf("bind: %q bound after Resolve", name))
	}

	a.names = append(a.names, name)
	b := &Binding[T]{name: name, ready: a.succeeded}

	if r.IsFailure() {
		b.failed = true
		a.errs.Add(convert(r.Err()))
		return b
	}

	b.value = r.Result()
	return b
}

// BindErr is Bind for a Go (value, error) pair.
func BindErr[T, E any](a *Aggregator[E], name string, v T, err error, convert func(error) E) *Binding[T] {
	return Bind(a, name, rop.Of(v, err), convert)
}

// Resolve seals the aggregator. With no failed binding it returns nil and
// true. Otherwise it returns the seed followed by the converted error of every
// failed binding, in binding order, and false.
func (a *Aggregator[E]) Resolve() (rop.Errors[E], bool) {
	if !a.resolved {
		a.resolved = true
		a.ok = len(a.errs) == 0
	}
	if a.ok {
		return nil, true
	}

	out := make(rop.Errors[E], 0, len(a.seed)+len(a.errs))
	out = append(out, a.seed...)
	out = append(out, a.errs...)
	return out, false
}

// Err is Resolve reported as a plain error.
func (a *Aggregator[E]) Err() error {
	errs, _ := a.Resolve()
	return errs.Err()
}

// Names lists the bindings in declaration order.
func (a *Aggregator[E]) Names() []string {
	return append([]string(nil), a.names...)
}

func (a *Aggregator[E]) succeeded() bool {
	return a.resolved && a.ok
}

func (b *Binding[T]) Name() string {
	return b.name
}

func (b *Binding[T]) Failed() bool {
	return b.failed
}

// Value returns the unwrapped value. It panics unless the aggregator was
// resolved with every binding successful.
func (b *Binding[T]) Value() T {
	if !b.ready() {
		panic(fmt.Sprintf("bind: %q read before a successful Resolve", b.name))
	}
	return b.value
}
