package mathutil

// Mat is a 2D float64 matrix stored as row-major [][]float64.
type Mat = [][]float64

// NewMat creates a rows x cols matrix initialized to zero,
// backed by a single contiguous allocation.
func NewMat(rows, cols int) Mat {
	m := make(Mat, rows)
	data := make([]float64, rows*cols)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols]
	}
	return m
}

// NewIntMat creates a rows x cols int matrix initialized to zero,
// backed by a single contiguous allocation.
func NewIntMat(rows, cols int) [][]int {
	m := make([][]int, rows)
	data := make([]int, rows*cols)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols]
	}
	return m
}
