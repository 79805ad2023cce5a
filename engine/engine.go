package engine

import (
	"fmt"
	"log"

	"go.starlark.net/starlark"

	"texture-viewer/viewport"
)

// Step is one input event applied by a replay script and the view state
// right after it.
type Step struct {
	Op   string        `yaml:"op"`
	At   viewport.Vec2 `yaml:"at"`
	Zoom float64       `yaml:"zoom"`
	Pan  viewport.Vec2 `yaml:"pan"`
}

// Result is what a replay produced: the recorded steps and every global
// the script left behind that converts to a plain Go value.
type Result struct {
	Steps   []Step
	Globals map[string]interface{}
}

// Replay runs a Starlark script against s. The script drives the session
// through scroll(delta, x, y), down(x, y), drag(x, y) and fit(), and can
// read it back with state().
func Replay(name, script string, s *viewport.Session) (*Result, error) {
	r := &replayer{session: s}
	thread := &starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, msg string) { log.Printf("[%s] %s", name, msg) },
	}

	globals := starlark.StringDict{
		"scroll": starlark.NewBuiltin("scroll", r.scroll),
		"down":   starlark.NewBuiltin("down", r.down),
		"drag":   starlark.NewBuiltin("drag", r.drag),
		"fit":    starlark.NewBuiltin("fit", r.fit),
		"state":  starlark.NewBuiltin("state", r.state),
	}
	for k, v := range map[string]interface{}{
		"image_width":  s.Image.Width,
		"image_height": s.Image.Height,
		"view_x":       s.View.X,
		"view_y":       s.View.Y,
		"view_width":   s.View.Width,
		"view_height":  s.View.Height,
	} {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, err
		}
		globals[k] = val
	}

	res := &Result{Globals: make(map[string]interface{})}
	out, err := starlark.ExecFile(thread, name, script, globals)
	res.Steps = r.steps
	if err != nil {
		return res, err
	}
	for k, v := range out {
		if gv := FromStarlarkValue(v); gv != nil {
			res.Globals[k] = gv
		}
	}
	return res, nil
}

type replayer struct {
	session *viewport.Session
	steps   []Step
}

func (r *replayer) record(op string, at viewport.Vec2) {
	r.steps = append(r.steps, Step{Op: op, At: at, Zoom: r.session.Zoom, Pan: r.session.Pan})
}

func (r *replayer) scroll(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var delta, x, y starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "delta", &delta, "x", &x, "y", &y); err != nil {
		return nil, err
	}
	nums, err := floats(b.Name(), delta, x, y)
	if err != nil {
		return nil, err
	}
	at := viewport.Vec2{X: nums[1], Y: nums[2]}
	r.session.Scroll(nums[0], at)
	r.record("scroll", at)
	return starlark.Float(r.session.Zoom), nil
}

func (r *replayer) down(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	at, err := unpackPoint(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	r.session.PointerDown(at)
	r.record("down", at)
	return starlark.None, nil
}

func (r *replayer) drag(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	at, err := unpackPoint(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	r.session.PointerDrag(at)
	r.record("drag", at)
	return starlark.None, nil
}

func (r *replayer) fit(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	r.session.Fit()
	r.record("fit", viewport.Vec2{})
	return starlark.None, nil
}

func (r *replayer) state(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	s := r.session
	d := starlark.NewDict(5)
	for k, v := range map[string]interface{}{
		"zoom":     s.Zoom,
		"min_zoom": s.MinZoom(),
		"pan_x":    s.Pan.X,
		"pan_y":    s.Pan.Y,
		"steps":    len(r.steps),
	} {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, err
		}
		if err := d.SetKey(starlark.String(k), val); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func unpackPoint(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (viewport.Vec2, error) {
	var x, y starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y", &y); err != nil {
		return viewport.Vec2{}, err
	}
	nums, err := floats(b.Name(), x, y)
	if err != nil {
		return viewport.Vec2{}, err
	}
	return viewport.Vec2{X: nums[0], Y: nums[1]}, nil
}

func floats(fn string, vals ...starlark.Value) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, ok := starlark.AsFloat(v)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d: want number, got %s", fn, i+1, v.Type())
		}
		out[i] = f
	}
	return out, nil
}

// Helpers for type conversion
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

// FromStarlarkValue converts script results back to Go values.
func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	}
	return nil
}
