package registry

import (
	"github.com/JeffJassky/pyhsim/simcontext"
)

// DefaultAuxiliary returns the catalog of hidden state variables: vesicle
// pools, enzyme/hormone reserves, and the accumulators multi-day chaining
// reads back (cortisolIntegral, sleepDebt).
func DefaultAuxiliary() []AuxDefinition {
	return []AuxDefinition{
		{
			Key: DopamineVesicles, Label: "Dopamine vesicle pool", Tau: 1e9,
			Setpoint: func(ctx simcontext.Context) float64 { return 1.0 },
			Production: []ProductionTerm{
				{Source: "constant", Coefficient: 0.05},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.05},
				// depletion proportional to release is modeled on the Dopamine
				// signal side via its own production draw; this term only
				// returns the pool toward its steady fill level.
			},
			InitialValue: func(ctx simcontext.Context) float64 { return 1.0 },
			Min:          ptr(0), Max: ptr(2),
			Policy: PolicyReset,
		},
		{
			Key: CRHPool, Label: "Corticotropin-releasing hormone pool",
			Setpoint: func(ctx simcontext.Context) float64 {
				if ctx.IsAsleep {
					return 0.6
				}
				return 1.0
			},
			Tau: 60,
			InitialValue: func(ctx simcontext.Context) float64 { return 1.0 },
			Min:          ptr(0), Max: ptr(3),
			Policy: PolicyCarry,
		},
		{
			Key: HepaticGlycogen, Label: "Hepatic glycogen store",
			Setpoint: func(ctx simcontext.Context) float64 { return 100 },
			Tau:      600,
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.002},
			},
			InitialValue: func(ctx simcontext.Context) float64 { return 100 },
			Min:          ptr(0), Max: ptr(150),
			Policy: PolicyCarry,
		},
		{
			Key: AdenosinePressure, Label: "Adenosine (sleep) pressure",
			Setpoint: func(ctx simcontext.Context) float64 {
				if ctx.IsAsleep {
					return 0.1
				}
				return 0.9
			},
			Tau: 240,
			InitialValue: func(ctx simcontext.Context) float64 {
				if ctx.IsAsleep {
					return 0.4
				}
				return 0.3
			},
			Min: ptr(0), Max: ptr(1),
			Policy: PolicyCarry,
		},
		{
			Key: InsulinAction, Label: "Delayed insulin sensitization",
			Setpoint: func(ctx simcontext.Context) float64 { return 0.3 },
			Tau:      10,
			Couplings: []Coupling{
				{Source: string(Insulin), Effect: Stimulate, Strength: 0.02, DelayMinutes: 15},
			},
			InitialValue: func(ctx simcontext.Context) float64 { return 0.3 },
			Min:          ptr(0), Max: ptr(3),
			Policy: PolicyReset,
		},
		{
			Key: CortisolIntegral, Label: "Cumulative cortisol exposure",
			Setpoint: func(ctx simcontext.Context) float64 { return 0 },
			Tau:      1e9, // effectively no relaxation; this is a running integral
			Production: []ProductionTerm{
				{Source: string(Cortisol), Coefficient: 1.0},
			},
			InitialValue: func(ctx simcontext.Context) float64 { return 0 },
			Min:          ptr(0), Max: nil,
			Policy: PolicyCarry,
		},
		{
			Key: SleepDebt, Label: "Accumulated sleep debt",
			Setpoint: func(ctx simcontext.Context) float64 { return 0 },
			Tau:      1e9,
			Production: []ProductionTerm{
				{Source: "constant", Coefficient: 1.0 / 60.0,
					Transform: func(x float64, snap Snapshot, ctx simcontext.Context) float64 {
						if ctx.IsAsleep {
							return 0
						}
						return x
					},
				},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 2.0 / 60.0,
					Transform: func(x float64, snap Snapshot, ctx simcontext.Context) float64 {
						if !ctx.IsAsleep {
							return 0
						}
						return 1
					},
				},
			},
			InitialValue: func(ctx simcontext.Context) float64 { return 0 },
			Min:          ptr(0), Max: ptr(24),
			Policy: PolicyCarry,
		},
		{
			Key: CatecholamineReserve, Label: "Catecholamine synthesis reserve",
			Setpoint: func(ctx simcontext.Context) float64 { return 1.0 },
			Tau:      30,
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.02,
					Transform: func(x float64, snap Snapshot, ctx simcontext.Context) float64 {
						return snap.Value(string(Norepinephrine)) / 150.0
					},
				},
			},
			InitialValue: func(ctx simcontext.Context) float64 { return 1.0 },
			Min:          ptr(0.1), Max: ptr(1.5),
			Policy: PolicyReset,
		},
		{
			Key: BetaCellReserve, Label: "Pancreatic beta-cell secretory reserve",
			Setpoint: func(ctx simcontext.Context) float64 { return 1.0 },
			Tau:      180,
			InitialValue: func(ctx simcontext.Context) float64 { return 1.0 },
			Min:          ptr(0.2), Max: ptr(1.2),
			Policy: PolicyCarry,
		},
		{
			Key: ReninPool, Label: "Renin substrate pool",
			Setpoint: func(ctx simcontext.Context) float64 { return 1.0 },
			Tau:      120,
			InitialValue: func(ctx simcontext.Context) float64 { return 1.0 },
			Min:          ptr(0.2), Max: ptr(2.5),
			Policy: PolicyCarry,
		},
		{
			Key: HistamineReserve, Label: "Mast cell histamine reserve",
			Setpoint: func(ctx simcontext.Context) float64 { return 1.0 },
			Tau:      20,
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.03,
					Transform: func(x float64, snap Snapshot, ctx simcontext.Context) float64 {
						return snap.Value(string(Histamine)) / 3.0
					},
				},
			},
			InitialValue: func(ctx simcontext.Context) float64 { return 1.0 },
			Min:          ptr(0.1), Max: ptr(1.5),
			Policy: PolicyReset,
		},
		{
			Key: AcetylcholineVesicles, Label: "Cholinergic vesicle pool",
			Setpoint: func(ctx simcontext.Context) float64 { return 1.0 },
			Tau:      5,
			Production: []ProductionTerm{
				{Source: "constant", Coefficient: 0.1},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.1},
			},
			InitialValue: func(ctx simcontext.Context) float64 { return 1.0 },
			Min:          ptr(0), Max: ptr(2),
			Policy: PolicyReset,
		},
		{
			Key: EndorphinReserve, Label: "Beta-endorphin precursor reserve",
			Setpoint: func(ctx simcontext.Context) float64 { return 1.0 },
			Tau:      180,
			InitialValue: func(ctx simcontext.Context) float64 { return 1.0 },
			Min:          ptr(0.2), Max: ptr(1.5),
			Policy: PolicyCarry,
		},
	}
}
