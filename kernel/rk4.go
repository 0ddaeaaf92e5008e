package kernel

// Stateful is the algebraic contract RK4Step needs from a state vector:
// component-wise addition and scalar multiplication. Implementations are
// expected to be value types (method receivers should not alias shared
// memory) so that intermediate k1..k4 stages never mutate the caller's x.
type Stateful[T any] interface {
	Add(T) T
	Scale(factor float64) T
}

// Derivative computes dx/dt at state x and time t (minutes).
type Derivative[T Stateful[T]] func(x T, t float64) T

// RK4Step advances x by one fixed step dt (minutes) using the classical
// 4th-order Runge-Kutta method:
//
//	k1 = f(x, t)
//	k2 = f(x + dt/2*k1, t + dt/2)
//	k3 = f(x + dt/2*k2, t + dt/2)
//	k4 = f(x + dt*k3, t + dt)
//	x' = x + dt*(k1 + 2*k2 + 2*k3 + k4)/6
func RK4Step[T Stateful[T]](x T, t, dt float64, f Derivative[T]) T {
	k1 := f(x, t)
	k2 := f(x.Add(k1.Scale(dt/2)), t+dt/2)
	k3 := f(x.Add(k2.Scale(dt/2)), t+dt/2)
	k4 := f(x.Add(k3.Scale(dt)), t+dt)

	sum := k1.
		Add(k2.Scale(2)).
		Add(k3.Scale(2)).
		Add(k4)
	return x.Add(sum.Scale(dt / 6))
}
