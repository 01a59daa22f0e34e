package models

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIntrinsic(t *testing.T) {
	tests := []struct {
		name   string
		kind   OptionKind
		strike float64
		s      float64
		want   float64
	}{
		{"call itm", Call, 100, 110, 10},
		{"call atm", Call, 100, 100, 0},
		{"call otm", Call, 100, 90, 0},
		{"put itm", Put, 100, 90, 10},
		{"put atm", Put, 100, 100, 0},
		{"put otm", Put, 100, 110, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intrinsic(tt.kind, tt.strike, tt.s); got != tt.want {
				t.Errorf("Intrinsic(%s, %v, %v) = %v, want %v", tt.kind, tt.strike, tt.s, got, tt.want)
			}
		})
	}
}

func TestLeg_Payoff(t *testing.T) {
	grid := []float64{80, 90, 100, 110, 120}

	t.Run("long call", func(t *testing.T) {
		leg := Leg{Quantity: 1, Kind: Call, Strike: 100, Premium: 5}
		want := []float64{-5, -5, -5, 5, 15}
		got := leg.Payoff(grid)
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("payoff[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("short put", func(t *testing.T) {
		leg := Leg{Quantity: -1, Kind: Put, Strike: 100, Premium: 4}
		want := []float64{-16, -6, 4, 4, 4}
		got := leg.Payoff(grid)
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("payoff[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("two lots scale linearly", func(t *testing.T) {
		single := Leg{Quantity: 1, Kind: Call, Strike: 100, Premium: 5}
		double := Leg{Quantity: 2, Kind: Call, Strike: 100, Premium: 5}
		s, d := single.Payoff(grid), double.Payoff(grid)
		for i := range s {
			if math.Abs(d[i]-2*s[i]) > 1e-12 {
				t.Errorf("double[%d] = %v, want %v", i, d[i], 2*s[i])
			}
		}
	})
}

func TestStrategy_NetPremium(t *testing.T) {
	tests := []struct {
		name string
		legs []Leg
		want float64
	}{
		{"empty", nil, 0},
		{"single long", []Leg{{Quantity: 1, Premium: 5}}, 5},
		{"single short", []Leg{{Quantity: -1, Premium: 4}}, -4},
		{"spread", []Leg{{Quantity: 1, Premium: 5}, {Quantity: -1, Premium: 3}}, 2},
		{"two lots", []Leg{{Quantity: 2, Premium: 1.5}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Strategy{Legs: tt.legs}
			if got := s.NetPremium(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("NetPremium = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrategy_MaxProfitLoss(t *testing.T) {
	grid := []float64{80, 90, 100, 110, 120}

	t.Run("bull call spread is bounded both ways", func(t *testing.T) {
		s := Strategy{Legs: []Leg{
			{Quantity: 1, Kind: Call, Strike: 100, Premium: 5},
			{Quantity: -1, Kind: Call, Strike: 110, Premium: 2},
		}}
		maxProfit, maxLoss := s.MaxProfitLoss(grid)
		if math.Abs(maxProfit-7) > 1e-12 {
			t.Errorf("max profit = %v, want 7", maxProfit)
		}
		if math.Abs(maxLoss-(-3)) > 1e-12 {
			t.Errorf("max loss = %v, want -3", maxLoss)
		}
	})

	t.Run("short call saturates at grid edge", func(t *testing.T) {
		s := Strategy{Legs: []Leg{{Quantity: -1, Kind: Call, Strike: 100, Premium: 5}}}
		maxProfit, maxLoss := s.MaxProfitLoss(grid)
		if math.Abs(maxProfit-5) > 1e-12 {
			t.Errorf("max profit = %v, want 5", maxProfit)
		}
		// True loss is unbounded; the grid caps it at its upper edge.
		if math.Abs(maxLoss-(-15)) > 1e-12 {
			t.Errorf("max loss = %v, want -15 at grid edge", maxLoss)
		}
	})

	t.Run("empty grid", func(t *testing.T) {
		s := Strategy{Legs: []Leg{{Quantity: 1, Kind: Call, Strike: 100, Premium: 5}}}
		maxProfit, maxLoss := s.MaxProfitLoss(nil)
		if maxProfit != 0 || maxLoss != 0 {
			t.Errorf("empty grid = (%v, %v), want (0, 0)", maxProfit, maxLoss)
		}
	})
}

func TestStrategy_Breakevens(t *testing.T) {
	t.Run("long call crosses once", func(t *testing.T) {
		s := Strategy{Legs: []Leg{{Quantity: 1, Kind: Call, Strike: 100, Premium: 5}}}
		grid := []float64{80, 90, 100, 110, 120}
		bes := s.Breakevens(grid)
		if len(bes) != 1 {
			t.Fatalf("breakeven count = %d, want 1", len(bes))
		}
		if math.Abs(bes[0]-105) > 1e-9 {
			t.Errorf("breakeven = %v, want 105", bes[0])
		}
	})

	t.Run("straddle crosses twice", func(t *testing.T) {
		s := Strategy{Legs: []Leg{
			{Quantity: 1, Kind: Call, Strike: 100, Premium: 4},
			{Quantity: 1, Kind: Put, Strike: 100, Premium: 3},
		}}
		grid := make([]float64, 201)
		for i := range grid {
			grid[i] = 50 + float64(i)*0.5
		}
		bes := s.Breakevens(grid)
		if len(bes) != 2 {
			t.Fatalf("breakeven count = %d, want 2: %v", len(bes), bes)
		}
		if math.Abs(bes[0]-93) > 1e-9 {
			t.Errorf("lower breakeven = %v, want 93", bes[0])
		}
		if math.Abs(bes[1]-107) > 1e-9 {
			t.Errorf("upper breakeven = %v, want 107", bes[1])
		}
	})

	t.Run("no crossing", func(t *testing.T) {
		s := Strategy{Legs: []Leg{{Quantity: 1, Kind: Call, Strike: 100, Premium: 5}}}
		bes := s.Breakevens([]float64{80, 85, 90})
		if len(bes) != 0 {
			t.Errorf("breakevens = %v, want none", bes)
		}
	})
}

// Property: The strategy payoff is the elementwise sum of its leg payoffs at
// every grid point, for any random combination of legs.
func TestProperty_PayoffSuperposition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	kinds := []OptionKind{Call, Put}

	legGen := gen.Struct(reflect.TypeOf(Leg{}), map[string]gopter.Gen{
		"Quantity": gen.IntRange(-3, 3).SuchThat(func(q int) bool { return q != 0 }),
		"Kind":     gen.OneConstOf(kinds[0], kinds[1]),
		"Strike":   gen.Float64Range(50, 150),
		"Premium":  gen.Float64Range(0.1, 20),
	})

	properties.Property("payoff equals sum of leg payoffs", prop.ForAll(
		func(legs []Leg) bool {
			s := Strategy{Legs: legs}
			grid := []float64{40, 70, 100, 130, 160}
			total := s.Payoff(grid)
			for i, price := range grid {
				var want float64
				for _, leg := range legs {
					want += float64(leg.Quantity) * (Intrinsic(leg.Kind, leg.Strike, price) - leg.Premium)
				}
				if math.Abs(total[i]-want) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(4, legGen),
	))

	properties.TestingRun(t)
}
