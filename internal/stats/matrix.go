package stats

// Matrix is a dense rows × cols matrix of int64 backed by one slice.
type Matrix struct {
	rows, cols int
	data       []int64
}

// NewMatrix returns a zeroed rows × cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]int64, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) int64 { return m.data[i*m.cols+j] }

// Row returns row i. The slice aliases the matrix storage.
func (m *Matrix) Row(i int) []int64 { return m.data[i*m.cols : (i+1)*m.cols] }

// Column returns a copy of column j.
func (m *Matrix) Column(j int) []int64 {
	out := make([]int64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// Last returns the final row, or a zero row when the matrix has no rows.
func (m *Matrix) Last() []int64 {
	if m.rows == 0 {
		return make([]int64, m.cols)
	}
	return m.Row(m.rows - 1)
}

// step writes row i as row i-1 (zero for i == 0) plus delta in column j.
func (m *Matrix) step(i, j int, delta int64) {
	row := m.Row(i)
	if i > 0 {
		copy(row, m.Row(i-1))
	}
	row[j] += delta
}
