package pk

// ModelKind selects which elimination/distribution shape a Kinetics record
// uses.
type ModelKind int

const (
	OneCompartment ModelKind = iota
	TwoCompartment
	MichaelisMenten
)

// Kinetics holds the rate constants for one compiled PK primitive. Only the
// fields relevant to Kind are consulted.
type Kinetics struct {
	Kind ModelKind

	Ka float64 // absorption rate constant, 1/min
	Ke float64 // elimination rate constant, 1/min (OneCompartment, TwoCompartment)
	V  float64 // volume of distribution, liters

	K12 float64 // central->peripheral exchange rate, 1/min (TwoCompartment)
	K21 float64 // peripheral->central exchange rate, 1/min (TwoCompartment)

	Vmax float64 // max elimination rate, concentration/min (MichaelisMenten)
	Km   float64 // half-saturation concentration (MichaelisMenten)

	Bioavailability float64 // fraction of dose reaching the absorption compartment, (0,1]
}

// Item is one active, compiled intervention instance: its delivery window,
// dose/intensity, and kinetics.
type Item struct {
	ID              string
	StartMinute     float64
	EndMinute       float64
	Mode            DeliveryMode
	Dose            float64
	Intensity       float64
	Kinetics        Kinetics
}

// Deposit implements the bolus delivery rule: the full bioavailable dose is
// added directly to the absorption compartment, once, at the item's first
// active grid step. Callers gate this with IsBolusDepositMinute.
func Deposit(state Compartments, item Item) Compartments {
	out := state
	out.Absorption += item.Dose * item.Kinetics.Bioavailability
	return out
}

// Derivative computes dCompartments/dt at time t for the given item,
// including metered (infusion/continuous) input but excluding bolus
// deposits, which Deposit handles directly.
func Derivative(state Compartments, t float64, item Item) Compartments {
	rate := InputRate(item.Mode, item.StartMinute, item.EndMinute, item.Dose*item.Kinetics.Bioavailability, item.Intensity, t)

	k := item.Kinetics
	switch k.Kind {
	case TwoCompartment:
		dAbsorption := -k.Ka*state.Absorption + rate
		absorbed := k.Ka * state.Absorption
		exchange := k.K12*state.Central - k.K21*state.Peripheral
		dCentral := absorbed/safeV(k.V) - k.Ke*state.Central - exchange
		dPeripheral := exchange
		return Compartments{Absorption: dAbsorption, Central: dCentral, Peripheral: dPeripheral}

	case MichaelisMenten:
		dCentral := -k.Vmax*state.Central/(k.Km+state.Central) + rate/safeV(k.V)
		return Compartments{Central: dCentral}

	default: // OneCompartment
		dAbsorption := -k.Ka*state.Absorption + rate
		dCentral := (k.Ka*state.Absorption)/safeV(k.V) - k.Ke*state.Central
		return Compartments{Absorption: dAbsorption, Central: dCentral}
	}
}

func safeV(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

// Concentration returns the plasma/effect-site concentration the PD layer
// consumes.
func Concentration(state Compartments) float64 {
	return state.Central
}

// MicrostepCount returns the number of PK microsteps to subdivide a single
// grid step of length dt into, so the per-microstep elimination rate stays
// below the 0.2 stiffness guard: ke*(dt/N) < 0.2. N is capped at 100, so
// the guard is exceeded when ke*dt >= 20.
func MicrostepCount(ke, dt float64) int {
	if ke <= 0 || dt <= 0 {
		return 1
	}
	n := int(ke*dt/0.2) + 1
	if n < 1 {
		return 1
	}
	if n > 100 {
		return 100
	}
	return n
}
