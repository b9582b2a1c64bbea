//go:build scenario

package scenario

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is a scripted draft session: an ordered list of engine moves and
// expectations loaded from a Lua file.
type Scenario struct {
	Name  string
	Steps []Step
}

// Step is one scripted move or expectation.
type Step struct {
	Kind string
	Args map[string]any
}

func loadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerScenarioType(state)
	registerScenarioConstructor(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "draft", Function: scenarioDraft},
	{Name: "pick", Function: scenarioPick},
	{Name: "pick_first", Function: scenarioPickFirst},
	{Name: "ban", Function: scenarioBan},
	{Name: "ban_first", Function: scenarioBanFirst},
	{Name: "reroll", Function: scenarioReroll},
	{Name: "skip", Function: scenarioSkip},
	{Name: "expect_error", Function: scenarioExpectError},
	{Name: "expect_picked", Function: scenarioExpectPicked},
	{Name: "expect_banned", Function: scenarioExpectBanned},
	{Name: "expect_options", Function: scenarioExpectOptions},
	{Name: "expect_pool", Function: scenarioExpectPool},
	{Name: "expect_complete", Function: scenarioExpectComplete},
	{Name: "expect_skipped", Function: scenarioExpectSkipped},
}

func scenarioDraft(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	appendStep(scenario, "draft", tableToMap(state, 2))
	return 0
}

func scenarioPick(state *lua.State) int {
	scenario := checkScenario(state)
	id := lua.CheckString(state, 2)
	appendStep(scenario, "pick", map[string]any{"id": id})
	return 0
}

func scenarioPickFirst(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "pick_first", nil)
	return 0
}

func scenarioBan(state *lua.State) int {
	scenario := checkScenario(state)
	id := lua.CheckString(state, 2)
	appendStep(scenario, "ban", map[string]any{"id": id})
	return 0
}

func scenarioBanFirst(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "ban_first", nil)
	return 0
}

func scenarioReroll(state *lua.State) int {
	scenario := checkScenario(state)
	seed := int(lua.CheckNumber(state, 2))
	appendStep(scenario, "reroll", map[string]any{"seed": seed})
	return 0
}

func scenarioSkip(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "skip", nil)
	return 0
}

func scenarioExpectError(state *lua.State) int {
	scenario := checkScenario(state)
	code := lua.CheckString(state, 2)
	appendStep(scenario, "expect_error", map[string]any{"code": code})
	return 0
}

func scenarioExpectPicked(state *lua.State) int {
	scenario := checkScenario(state)
	count := int(lua.CheckNumber(state, 2))
	appendStep(scenario, "expect_picked", map[string]any{"count": count})
	return 0
}

func scenarioExpectBanned(state *lua.State) int {
	scenario := checkScenario(state)
	count := int(lua.CheckNumber(state, 2))
	appendStep(scenario, "expect_banned", map[string]any{"count": count})
	return 0
}

func scenarioExpectOptions(state *lua.State) int {
	scenario := checkScenario(state)
	count := int(lua.CheckNumber(state, 2))
	appendStep(scenario, "expect_options", map[string]any{"count": count})
	return 0
}

func scenarioExpectPool(state *lua.State) int {
	scenario := checkScenario(state)
	count := int(lua.CheckNumber(state, 2))
	appendStep(scenario, "expect_pool", map[string]any{"count": count})
	return 0
}

func scenarioExpectComplete(state *lua.State) int {
	scenario := checkScenario(state)
	want := state.ToBoolean(2)
	appendStep(scenario, "expect_complete", map[string]any{"want": want})
	return 0
}

func scenarioExpectSkipped(state *lua.State) int {
	scenario := checkScenario(state)
	want := state.ToBoolean(2)
	appendStep(scenario, "expect_skipped", map[string]any{"want": want})
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) {
	if scenario == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	default:
		return nil
	}
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}
