package domain

import "sync"

// RequestConfig is the mutable, shareable holder of the current option set.
// Setters mutate it in place; queries read an Options snapshot, so a query
// never observes mutations made after it was started.
type RequestConfig struct {
	mu   sync.Mutex
	opts Options
}

func NewRequestConfig(auth Auth) *RequestConfig {
	return &RequestConfig{opts: DefaultOptions(auth)}
}

// Snapshot returns the current options as an immutable value.
func (c *RequestConfig) Snapshot() Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

func (c *RequestConfig) update(fn func(Options) Options) {
	c.mu.Lock()
	c.opts = fn(c.opts)
	c.mu.Unlock()
}

func (c *RequestConfig) updateChecked(fn func(Options) (Options, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := fn(c.opts)
	if err != nil {
		return err
	}
	c.opts = next
	return nil
}

func (c *RequestConfig) SetMode(mode string) error {
	return c.updateChecked(func(o Options) (Options, error) { return o.WithMode(mode) })
}

func (c *RequestConfig) SetLanguage(language string) {
	c.update(func(o Options) Options { return o.WithLanguage(language) })
}

func (c *RequestConfig) SetAvoid(avoid string) error {
	return c.updateChecked(func(o Options) (Options, error) { return o.WithAvoid(avoid) })
}

func (c *RequestConfig) SetUnits(units string) error {
	return c.updateChecked(func(o Options) (Options, error) { return o.WithUnits(units) })
}

func (c *RequestConfig) SetDepartureTime(value string) {
	c.update(func(o Options) Options { return o.WithDepartureTime(value) })
}

func (c *RequestConfig) SetArrivalTime(value string) {
	c.update(func(o Options) Options { return o.WithArrivalTime(value) })
}

func (c *RequestConfig) SetKey(key string) {
	c.update(func(o Options) Options { return o.WithKey(key) })
}

func (c *RequestConfig) SetClient(client string) {
	c.update(func(o Options) Options { return o.WithClient(client) })
}

func (c *RequestConfig) SetSignature(signature string) {
	c.update(func(o Options) Options { return o.WithSignature(signature) })
}

func (c *RequestConfig) SetTrafficModel(value string) {
	c.update(func(o Options) Options { return o.WithTrafficModel(value) })
}

func (c *RequestConfig) SetTransitMode(value string) {
	c.update(func(o Options) Options { return o.WithTransitMode(value) })
}

func (c *RequestConfig) SetTransitRoutingPreference(value string) {
	c.update(func(o Options) Options { return o.WithTransitRoutingPreference(value) })
}

// SetLocations records the formatted locations of the latest query.
func (c *RequestConfig) SetLocations(origins, destinations []string) {
	c.update(func(o Options) Options { return o.WithLocations(origins, destinations) })
}

func (c *RequestConfig) Reset() {
	c.update(Options.Reset)
}
