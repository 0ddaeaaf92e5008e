// Package pk models per-intervention pharmacokinetics: absorption,
// distribution, and elimination of a compound through one or two
// compartments, advanced by the same RK4 procedure the physiological ODE
// uses (kernel.RK4Step), so PK and signal state advance coherently within
// one grid step.
package pk

// Compartments is the PK state for a single active intervention instance.
// Absorption holds unabsorbed mass, Central is plasma/effect-site
// concentration, Peripheral is the two-compartment exchange tissue. A
// one-compartment model simply never touches Peripheral.
type Compartments struct {
	Absorption float64
	Central    float64
	Peripheral float64
}

// Add implements kernel.Stateful.
func (c Compartments) Add(o Compartments) Compartments {
	return Compartments{
		Absorption: c.Absorption + o.Absorption,
		Central:    c.Central + o.Central,
		Peripheral: c.Peripheral + o.Peripheral,
	}
}

// Scale implements kernel.Stateful.
func (c Compartments) Scale(factor float64) Compartments {
	return Compartments{
		Absorption: c.Absorption * factor,
		Central:    c.Central * factor,
		Peripheral: c.Peripheral * factor,
	}
}

// Clamp zeroes out any negative mass/concentration arising from integrator
// error, enforcing the never-negative PK invariant.
func (c Compartments) Clamp() Compartments {
	out := c
	if out.Absorption < 0 {
		out.Absorption = 0
	}
	if out.Central < 0 {
		out.Central = 0
	}
	if out.Peripheral < 0 {
		out.Peripheral = 0
	}
	return out
}
