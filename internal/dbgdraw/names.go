// Package dbgdraw renders a planning pass (subregions, sweep lists, router
// detour) to a PNG and prints it inline in an iTerm terminal, for use while
// debugging the pipeline by hand. It is never called from mission.Plan;
// callers opt in explicitly.
package dbgdraw

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name turns an arbitrary pointer-ish value into a random readable label,
// memoized so the same object gets the same label within one run. It
// flagrantly leaks memory but generates names lazily, so it's harmless
// outside of actual debugging use.
var memo = map[interface{}]string{}

func init() {
	// Names are generated in order of demand, so make them
	// nondeterministic to remind the user a name doesn't mean the same
	// thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
