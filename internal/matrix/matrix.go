package matrix

// Size is the fixed dimension of every Matrix.
const Size = 3

func Identity() *Matrix {
	return &Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func Zero() *Matrix {
	return &Matrix{}
}

type Matrix [Size][Size]int

// Row returns row i of m×n. It only reads m and n.
func (m *Matrix) Row(n *Matrix, i int) [Size]int {
	var row [Size]int

	for j := 0; j < Size; j++ {
		for k := 0; k < Size; k++ {
			row[j] += m[i][k] * n[k][j]
		}
	}

	return row
}

// Mul is the sequential triple-loop product.
func (m *Matrix) Mul(n *Matrix) *Matrix {
	var mn Matrix

	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			for k := 0; k < Size; k++ {
				mn[i][j] += m[i][k] * n[k][j]
			}
		}
	}

	return &mn
}
