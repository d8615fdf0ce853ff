package scoring

import "sync"

// Closer collects cleanup handlers keyed by name, so one handler is kept per key.
type Closer struct {
	handlers map[string]func()
	mx       sync.RWMutex
}

func NewCloser() *Closer {
	return &Closer{handlers: map[string]func(){}}
}

func (c *Closer) Append(key string, f func()) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.handlers[key] = f
}

func (c *Closer) Close() {
	c.mx.Lock()
	defer c.mx.Unlock()

	for key, f := range c.handlers {
		f()
		delete(c.handlers, key)
	}
}
