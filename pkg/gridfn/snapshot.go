package gridfn

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/randalmurphal/gridfn/pkg/gridfn/interp"
	"github.com/randalmurphal/gridfn/pkg/gridfn/observability"
	"github.com/randalmurphal/gridfn/pkg/gridfn/store"
)

// functionRecord is the serialized form of one registered function.
// Axes are stored in normalized (ascending) order together with the grid
// values, so reloading rebuilds an identical interpolant.
type functionRecord struct {
	Name        string             `json:"name"`
	Unit        string             `json:"unit"`
	CoordSystem string             `json:"coord_system,omitempty"`
	Method      string             `json:"method"`
	Bounds      string             `json:"bounds"`
	Axes        []axisRecord       `json:"axes"`
	Values      []float64          `json:"values"`
	Pinned      map[string]float64 `json:"pinned,omitempty"`
	Meta        metaRecord         `json:"meta"`
}

type axisRecord struct {
	Name   string    `json:"name"`
	Unit   string    `json:"unit"`
	Values []float64 `json:"values"`
}

type metaRecord struct {
	Citation    string         `json:"citation,omitempty"`
	Equation    string         `json:"equation,omitempty"`
	Description string         `json:"description,omitempty"`
	HiddenArgs  []string       `json:"hidden_args,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// SaveRegistry serializes every registered function into the store under
// one snapshot. When snapshotID is empty, a fresh UUID is generated.
// Returns the snapshot ID used.
func SaveRegistry(st store.Store, snapshotID string, reg *Registry, logger *slog.Logger) (string, error) {
	if snapshotID == "" {
		snapshotID = uuid.NewString()
	}

	total := 0
	for _, name := range reg.Names() {
		fn, err := reg.Get(name)
		if err != nil {
			return "", err
		}
		data, err := marshalFunction(fn)
		if err != nil {
			return "", fmt.Errorf("marshal %s: %w", name, err)
		}
		if err := st.Save(snapshotID, name, data); err != nil {
			return "", fmt.Errorf("save %s: %w", name, err)
		}
		total += len(data)
	}
	observability.LogSnapshotSave(logger, snapshotID, reg.Len(), total)
	return snapshotID, nil
}

// LoadRegistry rebuilds a registry from a stored snapshot.
// The snapshot must contain at least one function record.
func LoadRegistry(st store.Store, snapshotID string) (*Registry, error) {
	infos, err := st.List(snapshotID)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, store.ErrNotFound
	}

	reg := NewRegistry()
	for _, info := range infos {
		data, err := st.Load(snapshotID, info.Name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", info.Name, err)
		}
		fn, err := unmarshalFunction(data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", info.Name, err)
		}
		reg.Register(fn)
	}
	return reg, nil
}

func marshalFunction(fn *GriddedFunction) ([]byte, error) {
	rec := functionRecord{
		Name:        fn.name,
		Unit:        fn.meta.unit,
		CoordSystem: fn.coordSystem,
		Method:      string(fn.method),
		Bounds:      fn.bounds.String(),
		Values:      fn.grid.Values(),
		Meta: metaRecord{
			Citation:    fn.meta.Citation,
			Equation:    fn.meta.Equation,
			Description: fn.meta.Description,
			HiddenArgs:  fn.meta.HiddenArgs,
			Extra:       fn.meta.Extra,
		},
	}
	if len(fn.pinned) > 0 {
		rec.Pinned = fn.pinned
	}
	for d, ax := range fn.axes {
		rec.Axes = append(rec.Axes, axisRecord{
			Name:   ax.name,
			Unit:   ax.unit,
			Values: fn.grid.Axis(d),
		})
	}
	return json.Marshal(rec)
}

func unmarshalFunction(data []byte) (*GriddedFunction, error) {
	var rec functionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	bounds, err := interp.ParseBounds(rec.Bounds)
	if err != nil {
		return nil, err
	}

	axes := make([]AxisIn, len(rec.Axes))
	shape := make([]int, len(rec.Axes))
	for d, ar := range rec.Axes {
		axes[d] = AxisIn{Name: ar.Name, Unit: ar.Unit, Data: ar.Values}
		shape[d] = len(ar.Values)
	}
	vars := []VarIn{{Name: rec.Name, Unit: rec.Unit, Data: rec.Values, Shape: shape}}

	method := Method(rec.Method)
	if method == "" {
		method = MethodMultilinear
	}

	reg, err := Functionalize(axes, vars,
		WithCoordSystem(rec.CoordSystem),
		WithInterpolation(method),
		WithBounds(bounds),
	)
	if err != nil {
		return nil, err
	}
	fn, err := reg.Get(rec.Name)
	if err != nil {
		return nil, err
	}

	for name, value := range rec.Pinned {
		fn, err = fn.Restrict(name, value)
		if err != nil {
			return nil, err
		}
	}

	fn.meta.Citation = rec.Meta.Citation
	fn.meta.Equation = rec.Meta.Equation
	fn.meta.Description = rec.Meta.Description
	fn.meta.HiddenArgs = rec.Meta.HiddenArgs
	if rec.Meta.Extra != nil {
		fn.meta.Extra = rec.Meta.Extra
	}
	return fn, nil
}
