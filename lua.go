package championship

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"
)

// LuaPlugin calls a function in a Lua script. Inputs are passed to the function as JSON strings, and the
// function's return values are decoded as JSON into Outputs, last return value first.
type LuaPlugin struct {
	inputs  []interface{}
	outputs []interface{}
}

func (l *LuaPlugin) Inputs(i ...interface{}) *LuaPlugin {
	l.inputs = append(l.inputs, i...)

	return l
}

func (l *LuaPlugin) Outputs(o ...interface{}) *LuaPlugin {
	l.outputs = append(l.outputs, o...)

	return l
}

// Call runs script in a fresh Lua state and then calls functionName within it.
func (l *LuaPlugin) Call(script, functionName string) error {
	state := lua.NewState()
	defer state.Close()

	if err := state.DoString(script); err != nil {
		return err
	}

	fn := state.GetGlobal(functionName)

	if fn.Type() != lua.LTFunction {
		return errors.Errorf("lua: %s is not a function", functionName)
	}

	var jsonInputs []lua.LValue

	for _, input := range l.inputs {
		jsonInput, err := json.Marshal(input)

		if err != nil {
			return err
		}

		jsonInputs = append(jsonInputs, lua.LString(string(jsonInput)))
	}

	if err := state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    len(l.outputs),
		Protect: true,
	}, jsonInputs...); err != nil {
		return err
	}

	for i := range l.outputs {
		err := json.Unmarshal([]byte(state.Get(-1).String()), l.outputs[i])

		if err != nil {
			return err
		}

		state.Pop(1)
	}

	return nil
}

const surfaceFactorFunction = "surfaceFactor"

// LuaSurface is a Surface whose factor is computed by a Lua script. The script must define a function
// surfaceFactor(input) returning a positive number, where input is a JSON object holding the surface's name.
// The script is run once, when the surface is created.
type LuaSurface struct {
	FixedSurface
}

type luaSurfaceInput struct {
	Name string `json:"name"`
}

// NewLuaSurface runs script to find the factor of the named surface.
func NewLuaSurface(name, script string) (*LuaSurface, error) {
	var factor float64

	err := (&LuaPlugin{}).
		Inputs(luaSurfaceInput{Name: name}).
		Outputs(&factor).
		Call(script, surfaceFactorFunction)

	if err != nil {
		return nil, errors.Wrapf(err, "surface %q", name)
	}

	surface, err := NewSurface(name, factor)

	if err != nil {
		return nil, err
	}

	logrus.Debugf("Lua surface %s has factor %v", name, factor)

	return &LuaSurface{FixedSurface: *surface}, nil
}

// LoadLuaSurface reads the script for the named surface from a file.
func LoadLuaSurface(name, fileName string) (*LuaSurface, error) {
	script, err := ioutil.ReadFile(fileName)

	if err != nil {
		return nil, errors.Wrapf(err, "surface %q", name)
	}

	return NewLuaSurface(name, string(script))
}
