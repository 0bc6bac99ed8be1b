// Package bind evaluates a fixed set of independent, differently typed Results
// and decides once whether to continue with all unwrapped values or stop with
// every error converted into one aggregate type.
//
// Usage with the builder:
//
//	agg := bind.New[AppErr]()
//	user := bind.Bind(agg, "user", loadUser(id), userErrToApp)
//	cart := bind.Bind(agg, "cart", loadCart(id), cartErrToApp)
//	if errs, ok := agg.Resolve(); !ok {
//		return nil, errs
//	}
//	return checkout(user.Value(), cart.Value())
//
// Or with the fixed-arity helpers All2, All3 and All4 that return the values
// directly.
//
// Go has no way to rebind names in the caller's scope, so values are read
// through Binding.Value after a successful Resolve, and the early return on
// failure is written by the caller.
package bind
