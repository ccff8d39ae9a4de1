// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"sync"

	"titanium-cli/pkg/cmdmeta"
)

// Variant states.
const (
	// StateUnloaded means Load has not run yet.
	StateUnloaded VariantState = iota
	// StateLoaded means the metadata is available.
	StateLoaded
	// StateFailed means loading failed; the error is kept and never retried.
	StateFailed
)

// ErrNoLoader is returned when an unloaded variant is loaded without a Loader.
var ErrNoLoader = errors.New("no metadata loader configured")

type (
	// VariantState is the load state of a Variant.
	VariantState int

	// Loader resolves a provider locator into command metadata.
	Loader interface {
		Load(locator string) (*cmdmeta.Metadata, error)
	}

	// LoaderFunc adapts a function to the Loader interface.
	LoaderFunc func(locator string) (*cmdmeta.Metadata, error)

	// Variant is one provider's contribution to a command.
	Variant struct {
		locator string

		once     sync.Once
		state    VariantState
		metadata *cmdmeta.Metadata
		err      error
	}

	// VariantLoadError records a failed variant load.
	VariantLoadError struct {
		Locator string
		Err     error
	}
)

// Load calls f(locator).
func (f LoaderFunc) Load(locator string) (*cmdmeta.Metadata, error) {
	return f(locator)
}

// String returns the state name.
func (s VariantState) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("VariantState(%d)", int(s))
	}
}

// Error implements the error interface.
func (e *VariantLoadError) Error() string {
	return fmt.Sprintf("failed to load command metadata from %s: %v", e.Locator, e.Err)
}

// Unwrap returns the underlying load error.
func (e *VariantLoadError) Unwrap() error {
	return e.Err
}

// NewVariant returns an unloaded variant for locator.
func NewVariant(locator string) *Variant {
	return &Variant{locator: locator}
}

// NewLoadedVariant returns a variant that already holds md.
func NewLoadedVariant(md *cmdmeta.Metadata) *Variant {
	v := &Variant{state: StateLoaded, metadata: md}
	v.once.Do(func() {})
	return v
}

// Locator returns the locator the variant was registered with.
func (v *Variant) Locator() string { return v.locator }

// State returns the current load state.
func (v *Variant) State() VariantState { return v.state }

// Err returns the load error of a failed variant.
func (v *Variant) Err() error { return v.err }

// Load resolves the variant through loader on first use. Later calls return
// the memoized outcome without consulting loader again.
func (v *Variant) Load(loader Loader) (*cmdmeta.Metadata, error) {
	v.once.Do(func() {
		if loader == nil {
			v.fail(ErrNoLoader)
			return
		}
		md, err := loader.Load(v.locator)
		if err != nil {
			v.fail(err)
			return
		}
		if md == nil {
			md = &cmdmeta.Metadata{}
		}
		v.metadata = md
		v.state = StateLoaded
	})

	if v.state != StateLoaded {
		return nil, v.err
	}
	return v.metadata, nil
}

func (v *Variant) fail(err error) {
	v.state = StateFailed
	v.err = &VariantLoadError{Locator: v.locator, Err: err}
}
