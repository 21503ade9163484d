package geom

import "github.com/go-gl/mathgl/mgl64"

// Cross4 is the generalized cross product of three 4D vectors: a vector orthogonal to u, v and
// w, computed by cofactor expansion of the 3x4 matrix with rows u, v, w. It is the zero vector
// when u, v and w are linearly dependent.
func Cross4(u, v, w mgl64.Vec4) mgl64.Vec4 {
	det3 := func(a1, a2, a3, b1, b2, b3, c1, c2, c3 float64) float64 {
		return a1*(b2*c3-b3*c2) - a2*(b1*c3-b3*c1) + a3*(b1*c2-b2*c1)
	}

	return mgl64.Vec4{
		det3(u[1], u[2], u[3], v[1], v[2], v[3], w[1], w[2], w[3]),
		-det3(u[0], u[2], u[3], v[0], v[2], v[3], w[0], w[2], w[3]),
		det3(u[0], u[1], u[3], v[0], v[1], v[3], w[0], w[1], w[3]),
		-det3(u[0], u[1], u[2], v[0], v[1], v[2], w[0], w[1], w[2]),
	}
}

// TripleProduct returns a · (b x c), the determinant of the matrix with rows a, b, c.
func TripleProduct(a, b, c mgl64.Vec3) float64 {
	return mgl64.Mat3FromRows(a, b, c).Det()
}
