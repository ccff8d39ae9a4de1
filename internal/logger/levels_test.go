// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	want := []string{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
	if got := r.Ordered(); !slices.Equal(got, want) {
		t.Errorf("Ordered() = %v, want %v", got, want)
	}

	generic, ok := r.Generic()
	if !ok || generic.Name != LevelGeneric || !generic.Synthetic {
		t.Errorf("Generic() = %+v, %v", generic, ok)
	}

	levels := r.Levels()
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Rank >= levels[i].Rank {
			t.Errorf("ranks not strictly increasing: %s=%d, %s=%d",
				levels[i-1].Name, levels[i-1].Rank, levels[i].Name, levels[i].Rank)
		}
	}

	if _, err := r.Get("verbose"); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Get(unknown) error = %v, want ErrLevelNotFound", err)
	}
	if !r.Has(LevelGeneric) {
		t.Error("Has(_) = false")
	}
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		levels  []Level
		wantErr error
	}{
		{
			name:    "duplicate name",
			levels:  []Level{{Name: "a", Rank: 0}, {Name: "a", Rank: 1}},
			wantErr: ErrDuplicateLevel,
		},
		{
			name:    "second synthetic level",
			levels:  []Level{{Name: "_", Synthetic: true}, {Name: "plain", Synthetic: true}},
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "rank collision",
			levels:  []Level{{Name: "a", Rank: 3}, {Name: "b", Rank: 3}},
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "empty name",
			levels:  []Level{{Rank: 1}},
			wantErr: ErrInvalidLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRegistry()
			var err error
			for _, l := range tt.levels {
				if err = r.Register(l); err != nil {
					break
				}
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryOrdersByRank(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, l := range []Level{
		{Name: "loud", Rank: 10},
		{Name: "quiet", Rank: -5},
		{Name: "_", Synthetic: true},
		{Name: "normal", Rank: 2},
	} {
		if err := r.Register(l); err != nil {
			t.Fatalf("Register(%s) error = %v", l.Name, err)
		}
	}

	want := []string{"quiet", "normal", "loud"}
	if got := r.Ordered(); !slices.Equal(got, want) {
		t.Errorf("Ordered() = %v, want %v", got, want)
	}
}
