package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Element (row r, column c) lives at index c*4+r. Matrices act on column
// vectors from the left.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale returns a uniform scale on the first three axes.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[c*4+r]
}

// Set stores v at row r, column c.
func (m *Mat4) Set(r, c int, v float32) {
	m[c*4+r] = v
}

// Mul multiplies this matrix by another (m * other): other is applied first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// MulVec4 multiplies the matrix by a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Transpose returns the transposed matrix. For a rotor this is its inverse.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

// Column returns column c as a vector.
func (m Mat4) Column(c int) Vec4 {
	return Vec4{m[c*4], m[c*4+1], m[c*4+2], m[c*4+3]}
}

// Determinant returns the determinant by cofactor expansion along column 0.
func (m Mat4) Determinant() float32 {
	c00 := m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c01 := -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	c02 := m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	c03 := -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	return m[0]*c00 + m[4]*c01 + m[8]*c02 + m[12]*c03
}

// IsOrthogonal reports whether m * mᵗ is the identity within tol.
func (m Mat4) IsOrthogonal(tol float32) bool {
	p := m.Mul(m.Transpose())
	id := Identity()
	for i := range p {
		if abs(p[i]-id[i]) > tol {
			return false
		}
	}
	return true
}

// Orthonormalize returns the closest rotation obtained by Gram-Schmidt on
// the columns. Accumulated rotors drift away from orthogonality after many
// compositions; this pulls them back onto the rotation group.
// The computation runs in float64. A column that collapses is replaced by
// the first basis vector independent of the previous columns.
func (m Mat4) Orthonormalize() Mat4 {
	var cols [4][4]float64
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			cols[c][r] = float64(m[c*4+r])
		}
	}

	for c := 0; c < 4; c++ {
		v := cols[c]
		v = reject(v, cols[:c])
		n := norm(v)
		if n < Epsilon {
			for axis := 0; axis < 4; axis++ {
				var e [4]float64
				e[axis] = 1
				v = reject(e, cols[:c])
				if n = norm(v); n > 0.4 {
					break
				}
			}
		}
		for r := range v {
			v[r] /= n
		}
		cols[c] = v
	}

	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = float32(cols[c][r])
		}
	}
	// Keep det = +1 so the result stays a rotation.
	if out.Determinant() < 0 {
		for r := 0; r < 4; r++ {
			out[12+r] = -out[12+r]
		}
	}
	return out
}

func reject(v [4]float64, basis [][4]float64) [4]float64 {
	for _, b := range basis {
		d := v[0]*b[0] + v[1]*b[1] + v[2]*b[2] + v[3]*b[3]
		for r := range v {
			v[r] -= d * b[r]
		}
	}
	return v
}

func norm(v [4]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
