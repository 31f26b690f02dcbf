// Package dbg gives values short readable names, so that paths can be told
// apart in logs and CLI output without printing every vertex.
package dbg

import (
	"fmt"
	"math/rand"
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names are generated lazily on first request and remembered forever, so this
// leaks one string per distinct key. Call Reset to drop them.

var (
	mu    sync.Mutex
	memo  = make(map[interface{}]string)
	title = cases.Title(language.English)
)

// Seed used while deterministic mode is on
const deterministicSeed = 1

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Switch between reproducible and random names. Turning deterministic mode on
// forgets every name handed out so far and restarts the sequence, so the same
// order of requests gets the same names.
func Deterministic(on bool) {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
	if on {
		rand.Seed(deterministicSeed)
	} else {
		petname.NonDeterministicMode()
	}
}

// Readable name for obj, such as "BraveOtter". The same key always gets the
// same name until Reset. Slices, maps and funcs are keyed by identity.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}
	key := memoKey(obj)

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := title.String(petname.Adjective()) + title.String(petname.Name())
	memo[key] = r
	return r
}

// Forget every name handed out so far
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
}

type identityKey struct {
	kind    reflect.Kind
	pointer uintptr
}

// Values that can't be map keys are keyed by their pointer, or failing that,
// by their printed form.
func memoKey(obj interface{}) interface{} {
	v := reflect.ValueOf(obj)
	if v.Type().Comparable() {
		return obj
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return identityKey{kind: v.Kind(), pointer: v.Pointer()}
	}
	return fmt.Sprintf("%T %#v", obj, obj)
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}
