package main

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const progressDots = 40

// progressMonitor prints up to 40 dots for a run, then the elapsed time
type progressMonitor struct {
	mu          sync.Mutex
	w           io.Writer
	dotsPrinted int
	total       int
	start       time.Time
}

func newProgressMonitor(w io.Writer) *progressMonitor {
	return &progressMonitor{w: w, start: time.Now()}
}

// Update is called after each finished game
func (m *progressMonitor) Update(done, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	want := done * progressDots / max(total, 1)
	for m.dotsPrinted < want {
		fmt.Fprint(m.w, ".")
		m.dotsPrinted++
	}
}

// Finish ends the progress line
func (m *progressMonitor) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dotsPrinted > 0 {
		fmt.Fprintf(m.w, " %d games in %v\n", m.total, time.Since(m.start).Round(time.Millisecond))
	}
}
