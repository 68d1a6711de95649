package gridfn

// Arg is one argument of a gridded function: the axis name and unit.
type Arg struct {
	Name string
	Unit string
}

// Meta is the metadata record attached to a gridded function.
//
// Unit and argument units are fixed at build time and only readable.
// The remaining fields may be set or updated after construction; changes
// are visible to all holders of the record.
type Meta struct {
	unit     string
	argUnits map[string]string

	// Citation identifies the data source or model run.
	Citation string

	// Equation is display text for the right-hand side of the function,
	// e.g. a LaTeX expression. When empty, summaries fall back to a
	// description of the interpolation method.
	Equation string

	// Description is free-text documentation for the function.
	Description string

	// HiddenArgs lists argument names omitted from rendered signatures.
	HiddenArgs []string

	// Extra holds free-form metadata keys that have no typed field.
	Extra map[string]any
}

func newMeta(unit string, args []Arg) *Meta {
	argUnits := make(map[string]string, len(args))
	for _, a := range args {
		argUnits[a.Name] = a.Unit
	}
	return &Meta{
		unit:     unit,
		argUnits: argUnits,
		Extra:    make(map[string]any),
	}
}

// Unit returns the function's output unit.
func (m *Meta) Unit() string { return m.unit }

// ArgUnits returns a copy of the argument-name to unit mapping.
func (m *Meta) ArgUnits() map[string]string {
	units := make(map[string]string, len(m.argUnits))
	for k, v := range m.argUnits {
		units[k] = v
	}
	return units
}
