package pet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/petsim/internal/game/pet"
)

func TestNextState_Thresholds(t *testing.T) {
	tests := []struct {
		name  string
		attrs pet.Attributes
		want  pet.State
	}{
		{
			name:  "zero health is dead",
			attrs: pet.Attributes{Health: 0, MaxHealth: 100, Energy: 100, Hunger: 0, Happiness: 100},
			want:  pet.StateDead,
		},
		{
			name:  "energy at 20 is sleeping",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 20, Hunger: 0, Happiness: 100},
			want:  pet.StateSleeping,
		},
		{
			name:  "energy at 21 is not sleeping",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 21, Hunger: 0, Happiness: 0},
			want:  pet.StateNormal,
		},
		{
			name:  "hunger at 80 is hungry",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 60, Hunger: 80, Happiness: 50},
			want:  pet.StateHungry,
		},
		{
			name:  "hunger at 79 is not hungry",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 60, Hunger: 79, Happiness: 50},
			want:  pet.StateNormal,
		},
		{
			name:  "content pet on every boundary is happy",
			attrs: pet.Attributes{Health: 1, MaxHealth: 100, Energy: 51, Hunger: 49, Happiness: 70},
			want:  pet.StateHappy,
		},
		{
			name:  "happiness below 70 is not happy",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 51, Hunger: 49, Happiness: 69},
			want:  pet.StateNormal,
		},
		{
			name:  "hunger at 50 is not happy",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 51, Hunger: 50, Happiness: 70},
			want:  pet.StateNormal,
		},
		{
			name:  "energy at 50 is not happy",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 50, Hunger: 49, Happiness: 70},
			want:  pet.StateNormal,
		},
		{
			name:  "nothing matching is normal",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 100, Hunger: 0, Happiness: 0},
			want:  pet.StateNormal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pet.NextState(tc.attrs))
		})
	}
}

func TestNextState_Priority(t *testing.T) {
	tests := []struct {
		name  string
		attrs pet.Attributes
		want  pet.State
	}{
		{
			name:  "dead beats sleeping",
			attrs: pet.Attributes{Health: 0, MaxHealth: 100, Energy: 0, Hunger: 0, Happiness: 0},
			want:  pet.StateDead,
		},
		{
			name:  "dead beats hungry",
			attrs: pet.Attributes{Health: 0, MaxHealth: 100, Energy: 100, Hunger: 100, Happiness: 0},
			want:  pet.StateDead,
		},
		{
			name:  "sleeping beats hungry",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 10, Hunger: 90, Happiness: 0},
			want:  pet.StateSleeping,
		},
		{
			name:  "hungry beats happy",
			attrs: pet.Attributes{Health: 50, MaxHealth: 100, Energy: 100, Hunger: 90, Happiness: 100},
			want:  pet.StateHungry,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pet.NextState(tc.attrs))
		})
	}
}
