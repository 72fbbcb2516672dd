package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager plays short cues for growth and game over. Every method is a
// no-op until Initialize succeeds, so a machine without audio still plays.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

func (sm *Manager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *Manager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayEat is a short high blip
func (sm *Manager) PlayEat() {
	sm.play(880, 60*time.Millisecond)
}

// PlayGameOver is a longer low tone
func (sm *Manager) PlayGameOver() {
	sm.play(196, 400*time.Millisecond)
}

func (sm *Manager) play(freq float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), newTone(sampleRate, freq, d)))
	speaker.Unlock()
}

// tone is a sine wave with a linear fade-out to avoid clicks
type tone struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) *tone {
	return &tone{sr: sr, freq: freq, total: sr.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		env := 0.0
		if t.pos < t.total {
			env = 1 - float64(t.pos)/float64(t.total)
		}
		v := 0.3 * env * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
