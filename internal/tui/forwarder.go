package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Forwarder relays manager change notifications to a running program in the
// order they were raised. Notify never blocks, so it is safe to use as
// Options.OnThemeChange even when the change starts inside Update.
// Notifications raised before Start are held until a program is attached.
type Forwarder struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []string
	send    func(tea.Msg)
	stopped bool
	done    chan struct{}
}

// NewForwarder returns a forwarder with no program attached.
func NewForwarder() *Forwarder {
	f := &Forwarder{done: make(chan struct{})}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Notify queues a ThemeChangedMsg for name.
func (f *Forwarder) Notify(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.pending = append(f.pending, name)
	f.cond.Signal()
}

// Start attaches send, typically tea.Program.Send, and begins delivery on a
// single goroutine. Only the first call has an effect.
func (f *Forwarder) Start(send func(tea.Msg)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.send != nil || f.stopped {
		return
	}
	f.send = send
	go f.loop()
}

// Stop drops undelivered notifications and waits for the delivery goroutine.
func (f *Forwarder) Stop() {
	f.mu.Lock()
	started := f.send != nil
	if !f.stopped {
		f.stopped = true
		f.pending = nil
		f.cond.Broadcast()
	}
	f.mu.Unlock()

	if started {
		<-f.done
	}
}

func (f *Forwarder) loop() {
	defer close(f.done)

	f.mu.Lock()
	for {
		for len(f.pending) == 0 && !f.stopped {
			f.cond.Wait()
		}
		if f.stopped {
			f.mu.Unlock()
			return
		}
		name := f.pending[0]
		f.pending = f.pending[1:]
		send := f.send
		f.mu.Unlock()

		send(ThemeChangedMsg{Name: name})

		f.mu.Lock()
	}
}
