// Package metrics exposes a live runtime dashboard at /debug/statsviz/ on
// its own port, the way every node in this stack does, so GC pauses and
// goroutine growth during a long room (or a marathon ranked session) can
// be watched without attaching a profiler.
package metrics

import (
	"net/http"

	"github.com/arl/statsviz"
)

// Serve blocks forever serving the statsviz dashboard on addr. Run it in
// its own goroutine from main.
func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return err
	}
	return http.ListenAndServe(addr, mux)
}
