package tracker

import (
	"strings"

	"golang.org/x/net/html"
)

// operation adapts one named entry point to the typed API.
type operation func(b *Binding, args []any) (any, error)

// operations is the dispatch table behind Do. Names follow the original
// plugin surface so configuration-driven callers can keep their strings.
var operations = map[string]operation{
	"init":             opInit,
	"getFieldVal":      opGetFieldVal,
	"getAllFieldNames": opGetAllFieldNames,
	"getKeys":          opGetKeys,
	"reset":            opReset,
}

// Do invokes a named operation on the binding. Unknown names and malformed
// arguments return a *UsageError; the binding is never mutated by a failed
// call. Go callers should prefer the typed methods.
func Do(b *Binding, op string, args ...any) (any, error) {
	name := strings.TrimSpace(op)
	fn, ok := operations[name]
	if !ok {
		return nil, usageErr(name, "", ErrUnknownOperation)
	}
	if b == nil {
		return nil, usageErr(name, "nil binding", ErrBadArguments)
	}
	return fn(b, args)
}

func opInit(b *Binding, args []any) (any, error) {
	if len(args) != 0 {
		return nil, usageErr("init", "expects no arguments", ErrBadArguments)
	}
	return b, nil
}

func opGetFieldVal(b *Binding, args []any) (any, error) {
	name, err := stringArg("getFieldVal", args)
	if err != nil {
		return nil, err
	}
	return b.FieldValue(name), nil
}

func opGetAllFieldNames(b *Binding, args []any) (any, error) {
	if len(args) != 1 {
		return nil, usageErr("getAllFieldNames", "expects one element-slice argument", ErrBadArguments)
	}
	nodes, ok := args[0].([]*html.Node)
	if !ok {
		return nil, usageErr("getAllFieldNames", "argument must be []*html.Node", ErrBadArguments)
	}
	return FieldNames(nodes), nil
}

func opGetKeys(b *Binding, args []any) (any, error) {
	if len(args) != 1 {
		return nil, usageErr("getKeys", "expects one mapping argument", ErrBadArguments)
	}
	mapping, ok := args[0].(map[string]bool)
	if !ok {
		return nil, usageErr("getKeys", "argument must be map[string]bool", ErrBadArguments)
	}
	return Keys(mapping), nil
}

func opReset(b *Binding, args []any) (any, error) {
	if len(args) != 0 {
		return nil, usageErr("reset", "expects no arguments", ErrBadArguments)
	}
	return b.Reset(), nil
}

func stringArg(op string, args []any) (string, error) {
	if len(args) != 1 {
		return "", usageErr(op, "expects one string argument", ErrBadArguments)
	}
	value, ok := args[0].(string)
	if !ok {
		return "", usageErr(op, "argument must be a string", ErrBadArguments)
	}
	return value, nil
}
