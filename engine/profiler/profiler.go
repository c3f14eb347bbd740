// Package profiler records named timing spans into a ring buffer. Spans are
// dropped until Init is called, so instrumented code costs one atomic load
// when profiling is off.
package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Init enables recording with room for capacity open/close events. Calling
// it again discards everything recorded so far.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	evrb.init(capacity)
}

// Enabled reports whether Init has been called.
func Enabled() bool { return evrb.ready.Load() }

// Start begins a span and returns the func that ends it.
func Start(name string) func() {
	if !evrb.ready.Load() {
		return func() {}
	}
	fid := intern(name)
	start := time.Now().UnixNano()
	evrb.push(evEntry{AtNS: start, FrameID: fid, Open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < start {
			end = start
		}
		evrb.push(evEntry{AtNS: end, FrameID: fid, Open: false})
	}
}

// Span aggregates every recorded occurrence of one span name.
type Span struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

// Summary folds the recorded events into per-name totals, slowest first.
// Spans still open are ignored.
func Summary() []Span {
	evs := evrb.snapshot()
	names := frameNames()

	type open struct {
		fid int
		at  int64
	}
	var stack []open
	byID := map[int]*Span{}
	for _, e := range evs {
		if e.Open {
			stack = append(stack, open{e.FrameID, e.AtNS})
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1].fid != e.FrameID {
			continue
		}
		o := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s := byID[o.fid]
		if s == nil {
			s = &Span{Name: names[o.fid]}
			byID[o.fid] = s
		}
		d := time.Duration(e.AtNS - o.at)
		s.Count++
		s.Total += d
		if d > s.Max {
			s.Max = d
		}
	}

	out := make([]Span, 0, len(byID))
	for _, s := range byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}

// ---------- event ring ----------

type evEntry struct {
	AtNS    int64
	FrameID int
	Open    bool
}

type evRing struct {
	mu    sync.Mutex
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []evEntry
}

func (r *evRing) init(capacity int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cap = uint64(capacity)
	r.evs = make([]evEntry, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *evRing) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ready.Store(false)
	r.cap = 0
	r.evs = nil
	r.write.Store(0)
}

func (r *evRing) push(e evEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cap == 0 {
		return
	}
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot returns the retained events in write order.
func (r *evRing) snapshot() []evEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]evEntry, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

var evrb evRing

// ---------- string interner ----------

var (
	muFrames sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	muFrames.Lock()
	defer muFrames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}

func frameNames() []string {
	muFrames.Lock()
	defer muFrames.Unlock()
	return append([]string(nil), frames...)
}

// ---------- speedscope dump ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"` // "evented"
	Name       string    `json:"name"`
	Unit       string    `json:"unit"` // "microseconds"
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since first event
	Frame int    `json:"frame"`
}

// WriteSpeedscope dumps the recorded spans to path in speedscope's evented
// format.
func WriteSpeedscope(path string) error {
	evs := evrb.snapshot()
	if len(evs) == 0 {
		return fmt.Errorf("profiler: no events to dump")
	}
	names := frameNames()
	fs := make([]ssFrame, len(names))
	for i, name := range names {
		fs[i] = ssFrame{Name: name}
	}

	base := evs[0].AtNS
	var endUS int64
	lastUS := int64(-1)
	out := make([]ssEvent, 0, len(evs)+16)
	stack := make([]int, 0, 64)

	for _, e := range evs {
		atUS := (e.AtNS - base) / 1000
		if atUS < lastUS {
			atUS = lastUS
		}
		if e.Open {
			out = append(out, ssEvent{Type: "O", At: atUS, Frame: e.FrameID})
			stack = append(stack, e.FrameID)
		} else {
			// A close whose open fell out of the ring.
			if len(stack) == 0 || stack[len(stack)-1] != e.FrameID {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: atUS, Frame: e.FrameID})
		}
		lastUS = atUS
		endUS = max(endUS, atUS)
	}
	// speedscope needs balanced events.
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "grove layout",
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   out,
		}},
		Exporter: "grove-profiler",
		Name:     "grove capture",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
