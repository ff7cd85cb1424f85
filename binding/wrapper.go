package main

import (
	// #include <stdlib.h>
	"C"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/rutmehta/swipecore/decoder"
	"github.com/rutmehta/swipecore/keylayout"
	"github.com/rutmehta/swipecore/lm"
	"github.com/rutmehta/swipecore/template"
)

// EnvTemplatePath overrides the compiled template store path the same
// way wordgraph.EnvResourcePath overrides the compiled lexicon path.
const EnvTemplatePath = "SWIPECORE_TEMPLATES_PATH"

var engine *decoder.Engine

//export CreateEngine
func CreateEngine() {
	store, err := loadStore()
	if err != nil {
		engine = nil
		return
	}
	engine = decoder.NewEngine(store, keylayout.Default, lm.Neutral{})
}

func loadStore() (*template.Store, error) {
	path := os.Getenv(EnvTemplatePath)
	if path == "" {
		_, currentFile, _, _ := runtime.Caller(0)
		path = filepath.Join(filepath.Dir(currentFile), "swipe.templates")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return template.Load(f)
}

// gesturePoint is the wire shape DecodeGesture accepts: one sample per
// touch event, already in the host keyboard's normalized [0,1]x[0,1]
// coordinate space.
type gesturePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type decodeRequest struct {
	Points  []gesturePoint `json:"points"`
	Context []string       `json:"context"`
}

//export DecodeGesture
func DecodeGesture(request *C.char) *C.char {
	var req decodeRequest
	if err := json.Unmarshal([]byte(C.GoString(request)), &req); err != nil || engine == nil {
		return C.CString("[]")
	}

	points := make([]keylayout.Point, len(req.Points))
	for i, p := range req.Points {
		points[i] = keylayout.Point{X: p.X, Y: p.Y}
	}

	candidates := engine.Decode(points, req.Context)
	out, err := json.Marshal(candidates)
	if err != nil {
		return C.CString("[]")
	}
	return C.CString(string(out))
}

//export FreeString
func FreeString(str *C.char) {
	if str != nil {
		C.free(unsafe.Pointer(str))
	}
}

//export ReleaseEngine
func ReleaseEngine() {
	engine = nil
}

func main() {}
