package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
)

func TestRequestConfigFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeRequestConfigScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type requestConfigContext struct {
	cfg *RequestConfig
	err error
}

func initializeRequestConfigScenario(sc *godog.ScenarioContext) {
	rc := &requestConfigContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		rc.cfg = nil
		rc.err = nil
		return ctx, nil
	})

	sc.Step(`^a request configuration using the key "([^"]*)"$`, func(key string) error {
		rc.cfg = NewRequestConfig(SimpleKey{Key: key})
		return nil
	})

	sc.Step(`^(?:I set the mode to|the mode is set to) "([^"]*)"$`, func(v string) error {
		rc.err = rc.cfg.SetMode(v)
		return nil
	})
	sc.Step(`^(?:I set the units to|the units are set to) "([^"]*)"$`, func(v string) error {
		rc.err = rc.cfg.SetUnits(v)
		return nil
	})
	sc.Step(`^(?:I set avoid to|avoid is set to) "([^"]*)"$`, func(v string) error {
		rc.err = rc.cfg.SetAvoid(v)
		return nil
	})
	sc.Step(`^(?:I set the traffic model to|the traffic model is set to) "([^"]*)"$`, func(v string) error {
		rc.cfg.SetTrafficModel(v)
		return nil
	})
	sc.Step(`^I set the transit mode to "([^"]*)"$`, func(v string) error {
		rc.cfg.SetTransitMode(v)
		return nil
	})
	sc.Step(`^I set the transit routing preference to "([^"]*)"$`, func(v string) error {
		rc.cfg.SetTransitRoutingPreference(v)
		return nil
	})
	sc.Step(`^(?:I set the key to|the key is set to) "([^"]*)"$`, func(v string) error {
		rc.cfg.SetKey(v)
		return nil
	})
	sc.Step(`^(?:I set the client to|the client is set to) "([^"]*)"$`, func(v string) error {
		rc.cfg.SetClient(v)
		return nil
	})
	sc.Step(`^(?:I set the signature to|the signature is set to) "([^"]*)"$`, func(v string) error {
		rc.cfg.SetSignature(v)
		return nil
	})
	sc.Step(`^I reset the configuration$`, func() error {
		rc.cfg.Reset()
		return nil
	})

	sc.Step(`^the call succeeds$`, func() error {
		if rc.err != nil {
			return fmt.Errorf("expected success, got %v", rc.err)
		}
		return nil
	})
	sc.Step(`^the call fails with an invalid argument error$`, func() error {
		if !errors.Is(rc.err, ErrInvalidArgument) {
			return fmt.Errorf("expected invalid argument error, got %v", rc.err)
		}
		return nil
	})

	sc.Step(`^the encoded "([^"]*)" parameter is "([^"]*)"$`, func(name, want string) error {
		v, err := rc.cfg.Snapshot().Values()
		if err != nil {
			return err
		}
		if got := v.Get(name); got != want {
			return fmt.Errorf("%s = %q, want %q", name, got, want)
		}
		return nil
	})
	sc.Step(`^the encoded "([^"]*)" parameter is absent$`, func(name string) error {
		v, err := rc.cfg.Snapshot().Values()
		if err != nil {
			return err
		}
		if v.Has(name) {
			return fmt.Errorf("%s present with %q", name, v.Get(name))
		}
		return nil
	})

	sc.Step(`^the key is "([^"]*)"$`, func(want string) error {
		k, ok := rc.cfg.Snapshot().Auth.(SimpleKey)
		if !ok {
			return fmt.Errorf("expected simple key auth, got %#v", rc.cfg.Snapshot().Auth)
		}
		if k.Key != want {
			return fmt.Errorf("key = %q, want %q", k.Key, want)
		}
		return nil
	})
	sc.Step(`^no client or signature is present$`, func() error {
		if b, ok := rc.cfg.Snapshot().Auth.(BusinessAuth); ok {
			return fmt.Errorf("unexpected business auth %#v", b)
		}
		return nil
	})
	sc.Step(`^the client is "([^"]*)" and the signature is "([^"]*)"$`, func(client, signature string) error {
		want := BusinessAuth{Client: client, Signature: signature}
		if got := rc.cfg.Snapshot().Auth; got != Auth(want) {
			return fmt.Errorf("auth = %#v, want %#v", got, want)
		}
		return nil
	})
	sc.Step(`^no key is present$`, func() error {
		if k, ok := rc.cfg.Snapshot().Auth.(SimpleKey); ok {
			return fmt.Errorf("unexpected simple key auth %#v", k)
		}
		return nil
	})
}
