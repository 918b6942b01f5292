package manager

import "sync"

// persistQueue runs persist jobs one at a time, in submission order, on a
// single goroutine. It never blocks the submitter.
type persistQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	jobs   []string
	busy   bool
	closed bool
	run    func(name string)
	done   chan struct{}
}

func newPersistQueue(run func(name string)) *persistQueue {
	q := &persistQueue{run: run, done: make(chan struct{})}
	q.cond = sync.NewCond(&q.mu)
	go q.loop()
	return q
}

// push enqueues a job. It reports false once the queue is closed.
func (q *persistQueue) push(name string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.jobs = append(q.jobs, name)
	q.cond.Broadcast()
	return true
}

func (q *persistQueue) loop() {
	defer close(q.done)

	q.mu.Lock()
	for {
		for len(q.jobs) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.jobs) == 0 {
			q.mu.Unlock()
			return
		}
		name := q.jobs[0]
		q.jobs = q.jobs[1:]
		q.busy = true
		q.mu.Unlock()

		q.run(name)

		q.mu.Lock()
		q.busy = false
		q.cond.Broadcast()
	}
}

// flush waits until every job submitted so far has run.
func (q *persistQueue) flush() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.jobs) > 0 || q.busy {
		q.cond.Wait()
	}
}

// close stops accepting jobs, runs the ones already queued and waits for the
// worker to exit. It is safe to call more than once.
func (q *persistQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
	<-q.done
}
