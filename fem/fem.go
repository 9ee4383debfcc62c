// Package fem computes the deformation u(x) of a bar on [0, 2] with the
// finite element method, using n piecewise linear elements.
//
// The bar has stiffness E(x) = 3 on [0, 1] and 5 on (1, 2]. The weak form is
//
//	B(u, v) = ∫ E u' v' dx - 3 u(0) v(0)
//	L(v)    = -30 v(0)
//
// with u(2) = 0. The basis function of the node at x = 2 is left out, so the
// system has n unknowns.
package fem

import (
	"errors"
	"math"

	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"

	"github.com/DeltaTestSoftware/uplot/dataset"
)

// Length is the length of the bar.
const Length = 2.0

// ErrElements is returned for an element count below 1.
var ErrElements = errors.New("fem: need at least one element")

// E is the stiffness of the bar at x.
func E(x float64) float64 {
	if x <= 1 {
		return 3
	}
	return 5
}

func nodes(n, i int) (left, mid, right float64) {
	h := Length / float64(n)
	return float64(i-1) * h, float64(i) * h, float64(i+1) * h
}

// Basis is the hat function of node i evaluated at x.
func Basis(n, i int, x float64) float64 {
	l, m, r := nodes(n, i)
	if l <= x && x < m {
		return (x - l) / (m - l)
	}
	if m <= x && x <= r {
		return (r - x) / (r - m)
	}
	return 0
}

// BasisDeriv is the derivative of Basis(n, i, x) with respect to x.
func BasisDeriv(n, i int, x float64) float64 {
	l, m, r := nodes(n, i)
	if l <= x && x < m {
		return 1 / (m - l)
	}
	if m <= x && x <= r {
		return -1 / (r - m)
	}
	return 0
}

// Stiffness is ∫ E e_i' e_j' dx over the overlap of both supports, integrated
// with two point Gauss-Legendre quadrature.
func Stiffness(n, i, j int) float64 {
	if i-j > 1 || j-i > 1 {
		return 0
	}
	h := Length / float64(n)
	a := math.Max(0, float64(max(i, j)-1)*h)
	b := math.Min(Length, float64(min(i, j)+1)*h)
	f := func(x float64) float64 {
		return E(x) * BasisDeriv(n, i, x) * BasisDeriv(n, j, x)
	}
	return quad.Fixed(f, a, b, 2, quad.Legendre{}, 0)
}

// Assemble builds the n x n system B c = L.
func Assemble(n int) (*mat.Dense, *mat.VecDense) {
	B := mat.NewDense(n, n, nil)
	L := mat.NewVecDense(n, nil)
	for j := 0; j < n; j++ {
		L.SetVec(j, -30*Basis(n, j, 0))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			B.Set(i, j, Stiffness(n, i, j)-3*Basis(n, i, 0)*Basis(n, j, 0))
		}
	}
	return B, L
}

// Solve returns the coefficients of the n basis functions.
func Solve(n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrElements
	}
	B, L := Assemble(n)
	var c mat.VecDense
	if err := c.SolveVec(B, L); err != nil {
		return nil, pkgerrors.Wrapf(err, "fem: solve system with %d elements", n)
	}
	return mat.Col(nil, 0, &c), nil
}

// Sample evaluates the solution given by coeffs at all n+1 mesh nodes. There
// is no mesh for n < 1 and the result is empty.
func Sample(n int, coeffs []float64) dataset.Dataset {
	if n < 1 {
		return nil
	}
	h := Length / float64(n)
	d := make(dataset.Dataset, n+1)
	for i := range d {
		x := float64(i) * h
		var u float64
		for j, c := range coeffs {
			u += c * Basis(n, j, x)
		}
		d[i] = dataset.Sample{X: x, U: u}
	}
	return d
}
