// Package params provides the named parameter store that fitting models
// write their starting values into: float64 values, bounds, vary flags,
// and derived parameters bound to structured expressions.
//
// 🚀 What is params?
//
//	A deterministic, insertion-ordered container keyed by exact parameter
//	name. Models register their parameters here at construction time and
//	guess procedures write starting values back through Set. Downstream
//	optimizers read values, bounds, and vary flags from the same store.
//
// ✨ Key features:
//   - insertion-ordered Names() — reproducible iteration, no map shuffle
//   - idempotent re-registration: Add/AddDerived on an existing name
//     updates in place and keeps its position
//   - derived parameters: value recomputed on every read from a
//     structured (op, operands, constant) expression — never stored,
//     never independently settable
//   - bounds and vary flags recorded for the optimizer; the store never
//     clamps or enforces them itself
//
// ⚙️ Usage:
//
//	st := params.New()
//	_ = st.Add("sigma", 1.2)
//	_ = st.AddDerived("fwhm", params.Expr{
//	  Op: params.OpScale, Operands: []string{"sigma"}, Const: 2.354820,
//	})
//	v, _ := st.Value("fwhm") // 2.354820 × current sigma, always
//
// Concurrency:
//
//	A Store is not internally synchronized. Distinct stores are fully
//	independent; concurrent writers into one store need external locking.
//
// See examples in example_test.go.
package params
