package ctrl

import (
	"strconv"
	"strings"
)

// Matrix cell values.
const (
	CellEmpty uint8 = 0
	CellSnake uint8 = 1
	CellFood  uint8 = 7
)

// Matrix is a dense row-major view of the board, mainly for debugging.
// Rows[y][x] holds one of the Cell constants.
type Matrix struct {
	Rows [][]uint8
}

// NewMatrix allocates an empty dimX x dimY matrix.
func NewMatrix(dimX, dimY uint16) Matrix {
	rows := make([][]uint8, dimY)
	for y := range rows {
		rows[y] = make([]uint8, dimX)
	}
	return Matrix{Rows: rows}
}

// Cell returns the value at column x, row y.
func (m Matrix) Cell(x, y int) (uint8, error) {
	if y < 0 || y >= len(m.Rows) {
		return 0, &IndexError{Axis: AxisRow, Index: y}
	}
	if x < 0 || x >= len(m.Rows[y]) {
		return 0, &IndexError{Axis: AxisColumn, Index: x}
	}
	return m.Rows[y][x], nil
}

func (m Matrix) addSnake(snake []Point) {
	for _, p := range snake {
		m.Rows[p.Y][p.X] = CellSnake
	}
}

func (m Matrix) addFood(food []Point) {
	for _, p := range food {
		m.Rows[p.Y][p.X] = CellFood
	}
}

// String prints one row per line with cells separated by spaces.
func (m Matrix) String() string {
	lines := make([]string, len(m.Rows))
	for y, row := range m.Rows {
		cells := make([]string, len(row))
		for x, c := range row {
			cells[x] = strconv.Itoa(int(c))
		}
		lines[y] = strings.Join(cells, " ")
	}
	return strings.Join(lines, "\n")
}
