package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// ControlKind selects one compositor toggle or setting.
type ControlKind uint8

const (
	ControlMargin ControlKind = iota
	ControlOpacity
	ControlResolution
	ControlFast
	ControlShader
	ControlFPS
	ControlBenchmark
	ControlMouse
)

var controlKeys = [...]string{
	ControlMargin:     "margin",
	ControlOpacity:    "opacity",
	ControlResolution: "resolution",
	ControlFast:       "fast",
	ControlShader:     "shader",
	ControlFPS:        "fps",
	ControlBenchmark:  "benchmark",
	ControlMouse:      "mouse",
}

// Named resolution presets understood by the compositor.
const (
	presetLowResolution  = "640x360"
	presetHighResolution = "800x450"
)

// Control is a single-setting compositor command: margin, opacity,
// resolution, fast-mode, shader, fps overlay, benchmark, and mouse
// visibility or query.
type Control struct {
	Kind  ControlKind
	Value string
}

// ControlKindFromKey maps an envelope key name to its kind.
func ControlKindFromKey(key string) (ControlKind, error) {
	for k, name := range controlKeys {
		if name == key {
			return ControlKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown control %q: %w", key, ErrRange)
}

func (c Control) Validate() error {
	switch c.Kind {
	case ControlMargin:
		v, err := strconv.Atoi(c.Value)
		if err != nil || v < 0 {
			return fmt.Errorf("margin must be a non-negative pixel count, got %q: %w", c.Value, ErrRange)
		}
	case ControlOpacity:
		v, err := strconv.Atoi(c.Value)
		if err != nil || v < 0 || v > MaxOpacity {
			return fmt.Errorf("opacity %q outside [0,%d]: %w", c.Value, MaxOpacity, ErrRange)
		}
	case ControlResolution:
		if _, err := resolveResolution(c.Value); err != nil {
			return err
		}
	case ControlFast, ControlShader, ControlBenchmark:
		if c.Value != "enable" && c.Value != "disable" {
			return fmt.Errorf("%s must be enable or disable, got %q: %w",
				controlKeys[c.Kind], c.Value, ErrRange)
		}
	case ControlFPS:
		if c.Value != "0" && c.Value != "1" {
			return fmt.Errorf("fps must be 0 or 1, got %q: %w", c.Value, ErrRange)
		}
	case ControlMouse:
		switch c.Value {
		case "query", "show", "hide":
		default:
			return fmt.Errorf("mouse must be query, show or hide, got %q: %w", c.Value, ErrRange)
		}
	default:
		return fmt.Errorf("unknown control kind %d: %w", c.Kind, ErrRange)
	}
	return nil
}

func (c Control) keyvals() []kv {
	val := c.Value
	if c.Kind == ControlResolution {
		// Presets were validated already
		val, _ = resolveResolution(c.Value)
	}
	return []kv{{controlKeys[c.Kind], val}}
}

// resolveResolution normalizes a resolution value: LOW and HIGH map to
// their preset dimensions, otherwise the value must be literal WxH.
func resolveResolution(v string) (string, error) {
	switch strings.ToUpper(v) {
	case "LOW":
		return presetLowResolution, nil
	case "HIGH":
		return presetHighResolution, nil
	}
	w, h, ok := strings.Cut(v, "x")
	if ok {
		wv, werr := strconv.Atoi(w)
		hv, herr := strconv.Atoi(h)
		if werr == nil && herr == nil && wv > 0 && hv > 0 {
			return v, nil
		}
	}
	return "", fmt.Errorf("resolution must be WxH or LOW/HIGH, got %q: %w", v, ErrRange)
}
