package bind

import "github.com/ib-77/roperrs/pkg/rop"

// All2 resolves two bindings. errs is nil exactly when both succeeded.
func All2[A, B, EA, EB, E any](seed []E,
	ra rop.Result[A, EA], ca func(EA) E,
	rb rop.Result[B, EB], cb func(EB) E) (A, B, rop.Errors[E]) {

	agg := New(seed...)
	a := Bind(agg, "a", ra, ca)
	b := Bind(agg, "b", rb, cb)

	if errs, ok := agg.Resolve(); !ok {
		var za A
		var zb B
		return za, zb, errs
	}
	return a.Value(), b.Value(), nil
}

func All3[A, B, C, EA, EB, EC, E any](seed []E,
	ra rop.Result[A, EA], ca func(EA) E,
	rb rop.Result[B, EB], cb func(EB) E,
	rc rop.Result[C, EC], cc func(EC) E) (A, B, C, rop.Errors[E]) {

	agg := New(seed...)
	a := Bind(agg, "a", ra, ca)
	b := Bind(agg, "b", rb, cb)
	c := Bind(agg, "c", rc, cc)

	if errs, ok := agg.Resolve(); !ok {
		var za A
		var zb B
		var zc C
		return za, zb, zc, errs
	}
	return a.Value(), b.Value(), c.Value(), nil
}

func All4[A, B, C, D, EA, EB, EC, ED, E any](seed []E,
	ra rop.Result[A, EA], ca func(EA) E,
	rb rop.Result[B, EB], cb func(EB) E,
	rc rop.Result[C, EC], cc func(EC) E,
	rd rop.Result[D, ED], cd func(ED) E) (A, B, C, D, rop.Errors[E]) {

	agg := New(seed...)
	a := Bind(agg, "a", ra, ca)
	b := Bind(agg, "b", rb, cb)
	c := Bind(agg, "c", rc, cc)
	d := Bind(agg, "d", rd, cd)

	if errs, ok := agg.Resolve(); !ok {
		var za A
		var zb B
		var zc C
		var zd D
		return za, zb, zc, zd, errs
	}
	return a.Value(), b.Value(), c.Value(), d.Value(), nil
}
