package loader

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// maxLuaRepeat is the longest string string.rep may build.
const maxLuaRepeat = 1 << 20

// luaUnsafeGlobals are removed from the base library before a module runs.
var luaUnsafeGlobals = []string{"dofile", "loadfile", "load", "loadstring", "require", "module"}

// newLuaParser returns a Parser that evaluates a Lua chunk and captures the
// table it returns.
func newLuaParser(timeout time.Duration) Parser {
	return func(name string, data []byte) (map[string]any, error) {
		L := lua.NewState(lua.Options{SkipOpenLibs: true})
		defer L.Close()

		openSafeLibraries(L)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		L.SetContext(ctx)

		fn, err := L.Load(bytes.NewReader(data), name)
		if err != nil {
			return nil, err
		}

		L.Push(fn)
		if err := L.PCall(0, 1, nil); err != nil {
			return nil, err
		}
		ret := L.Get(-1)
		L.Pop(1)

		table, ok := ret.(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("module must return a table, got %s", ret.Type())
		}

		m, ok := luaToGo(table, map[*lua.LTable]bool{}).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("module must return a mapping, got a sequence")
		}
		return m, nil
	}
}

// openSafeLibraries opens the base, table, string and math libraries only.
// io, os, debug, channel, coroutine and package stay closed.
func openSafeLibraries(L *lua.LState) {
	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	for _, name := range luaUnsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	// The string metatable indexes this same table, so ("x"):rep(n) is
	// covered too.
	if strlib, ok := L.GetGlobal(lua.StringLibName).(*lua.LTable); ok {
		strlib.RawSetString("rep", L.NewFunction(luaStringRep))
	}
}

// luaStringRep is string.rep with the result length capped at maxLuaRepeat.
func luaStringRep(L *lua.LState) int {
	s := L.CheckString(1)
	n := L.CheckInt(2)
	if n <= 0 || s == "" {
		L.Push(lua.LString(""))
		return 1
	}
	if n > maxLuaRepeat/len(s) {
		L.RaiseError("string.rep: result longer than %d bytes", maxLuaRepeat)
		return 0
	}
	L.Push(lua.LString(strings.Repeat(s, n)))
	return 1
}

// luaToGo converts a Lua value to plain Go data. Functions, userdata and
// repeated tables become nil.
func luaToGo(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil
		}
		visited[v] = true
		defer delete(visited, v)
		return tableToGo(v, visited)
	default:
		return nil
	}
}

// tableToGo converts a table with contiguous integer keys from 1 to a
// slice and anything else, including the empty table, to a map.
func tableToGo(t *lua.LTable, visited map[*lua.LTable]bool) any {
	count := 0
	maxN := 0
	isArray := true
	t.ForEach(func(k, _ lua.LValue) {
		count++
		kn, ok := k.(lua.LNumber)
		if !ok || float64(kn) != float64(int(kn)) || int(kn) < 1 {
			isArray = false
			return
		}
		if int(kn) > maxN {
			maxN = int(kn)
		}
	})

	if isArray && count > 0 && count == maxN {
		arr := make([]any, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = luaToGo(t.RawGetInt(i), visited)
		}
		return arr
	}

	m := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		var key string
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		case lua.LNumber:
			key = fmt.Sprintf("%v", float64(kv))
		default:
			key = k.String()
		}
		m[key] = luaToGo(v, visited)
	})
	return m
}
