package params

// Store is an insertion-ordered collection of named float64 parameters.
//
// Registration is idempotent: re-adding an existing name updates the
// entry in place and keeps its original position, so composed models can
// re-attach to a shared store without disturbing it. The zero Store is
// not usable; construct with New.
type Store struct {
	order []string
	items map[string]*entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{items: make(map[string]*entry)}
}

// Len reports the number of registered parameters, derived included.
func (s *Store) Len() int { return len(s.order) }

// Has reports whether name is registered.
func (s *Store) Has(name string) bool {
	_, ok := s.items[name]

	return ok
}

// Names returns the registered names in insertion order. The slice is a
// copy; callers may keep or mutate it freely.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

// Add registers a free parameter with the given starting value, or
// updates the value of an already registered free parameter in place.
//
// Errors:
//   - ErrEmptyName    — name is "".
//   - ErrDerivedParam — name is bound to an expression; derived values
//     are never directly assignable.
func (s *Store) Add(name string, value float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if e, ok := s.items[name]; ok {
		if e.derived {
			return ErrDerivedParam
		}
		e.value = value

		return nil
	}
	s.items[name] = newEntry(value)
	s.order = append(s.order, name)

	return nil
}

// AddDerived registers a derived parameter whose value is recomputed
// from expr on every read. Re-registration of the same name replaces the
// expression (idempotent for identical expressions). Registering over an
// existing free parameter converts it, keeping its position.
//
// Derived parameters are never varied and never accept Set; their
// operands are resolved lazily, so an operand may be registered later —
// reading before then yields ErrUnknownParam.
//
// Errors:
//   - ErrEmptyName — name is "".
//   - ErrBadExpr   — unknown op, wrong operand count, empty or
//     self-referential operand.
func (s *Store) AddDerived(name string, expr Expr) error {
	if name == "" {
		return ErrEmptyName
	}
	if err := validateExpr(name, expr); err != nil {
		return err
	}

	if e, ok := s.items[name]; ok {
		e.derived = true
		e.vary = false
		e.expr = expr
		e.value = 0

		return nil
	}

	e := newEntry(0)
	e.derived = true
	e.vary = false
	e.expr = expr
	s.items[name] = e
	s.order = append(s.order, name)

	return nil
}

// Set assigns a new value to a free parameter.
//
// Errors:
//   - ErrUnknownParam — name is not registered.
//   - ErrDerivedParam — name is expression-bound; derived parameters are
//     recomputed from their primaries and never independently settable.
func (s *Store) Set(name string, value float64) error {
	e, ok := s.items[name]
	if !ok {
		return ErrUnknownParam
	}
	if e.derived {
		return ErrDerivedParam
	}
	e.value = value

	return nil
}

// Value returns the current value of name. A derived parameter is
// recomputed from its expression on every call, so it always reflects
// the latest primary values.
//
// Errors:
//   - ErrUnknownParam — name (or a referenced operand) is not registered.
//   - ErrExprCycle    — derived parameters reference each other in a loop.
func (s *Store) Value(name string) (float64, error) {
	return s.value(name, nil)
}

// Get returns a read-only snapshot of name; for a derived parameter the
// snapshot carries the expression result at call time.
func (s *Store) Get(name string) (Param, error) {
	e, ok := s.items[name]
	if !ok {
		return Param{}, ErrUnknownParam
	}

	v, err := s.value(name, nil)
	if err != nil {
		return Param{}, err
	}

	return Param{
		Name:    name,
		Value:   v,
		Min:     e.min,
		Max:     e.max,
		Vary:    e.vary,
		Derived: e.derived,
		Expr:    e.expr,
	}, nil
}

// SetBounds records optimizer bounds for name. The store never clamps
// the value; bounds are advisory metadata for the fitting layer.
//
// Errors:
//   - ErrUnknownParam — name is not registered.
//   - ErrBadBounds    — min > max.
func (s *Store) SetBounds(name string, min, max float64) error {
	e, ok := s.items[name]
	if !ok {
		return ErrUnknownParam
	}
	if min > max {
		return ErrBadBounds
	}
	e.min, e.max = min, max

	return nil
}

// SetVary flags name as free (true) or fixed (false) for the optimizer.
//
// Errors:
//   - ErrUnknownParam — name is not registered.
//   - ErrDerivedParam — derived parameters are never free.
func (s *Store) SetVary(name string, vary bool) error {
	e, ok := s.items[name]
	if !ok {
		return ErrUnknownParam
	}
	if e.derived {
		return ErrDerivedParam
	}
	e.vary = vary

	return nil
}

// value resolves name, following derived expressions recursively.
// visiting tracks the names on the current resolution path to detect
// expression cycles.
func (s *Store) value(name string, visiting map[string]bool) (float64, error) {
	e, ok := s.items[name]
	if !ok {
		return 0, ErrUnknownParam
	}
	if !e.derived {
		return e.value, nil
	}

	if visiting[name] {
		return 0, ErrExprCycle
	}
	if visiting == nil {
		visiting = make(map[string]bool, 2)
	}
	visiting[name] = true

	switch e.expr.Op {
	case OpScale:
		operand, err := s.value(e.expr.Operands[0], visiting)
		if err != nil {
			return 0, err
		}

		return e.expr.Const * operand, nil
	default:
		// validateExpr rejects unknown ops at registration.
		return 0, ErrBadExpr
	}
}

// validateExpr rejects malformed expressions at registration time, so
// reads only ever fail on unresolved operands or cycles.
func validateExpr(owner string, expr Expr) error {
	switch expr.Op {
	case OpScale:
		if len(expr.Operands) != 1 {
			return ErrBadExpr
		}
	default:
		return ErrBadExpr
	}
	for _, op := range expr.Operands {
		if op == "" || op == owner {
			return ErrBadExpr
		}
	}

	return nil
}
