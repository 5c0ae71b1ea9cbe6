package obj

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script is an optional tengo patrol brain for a mob. The script sees the
// simulation time `t`, the mob's world x position `x`, its current `tempo`
// and its configured cruising `speed`, and writes the tempo it wants back
// into `tempo`. Compiled once, run every tick.
type Script struct {
	compiled *tengo.Compiled
}

func NewScript(src []byte, speed float64) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_ = script.Add("t", 0.0)
	_ = script.Add("x", 0.0)
	_ = script.Add("tempo", 0.0)
	_ = script.Add("speed", speed)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile mob script: %w", err)
	}
	return &Script{compiled: compiled}, nil
}

// Tempo runs the script and returns the tempo it chose. Script failures keep
// the current tempo so a bad script degrades to a straight-line patrol.
func (s *Script) Tempo(t, x, tempo float64) float64 {
	if s == nil || s.compiled == nil {
		return tempo
	}
	_ = s.compiled.Set("t", t)
	_ = s.compiled.Set("x", x)
	_ = s.compiled.Set("tempo", tempo)
	if err := s.compiled.Run(); err != nil {
		log.Printf("obj: mob script: %v", err)
		return tempo
	}
	return s.compiled.Get("tempo").Float()
}
