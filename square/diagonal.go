package square

// Diagonal identifies one of the 15 NE-SW diagonals of the board.
type Diagonal int8

// DiagonalN is the number of NE-SW diagonals.
const DiagonalN = 15

// AntiDiagonal identifies one of the 15 NW-SE anti-diagonals of the board.
type AntiDiagonal int8

// AntiDiagonalN is the number of NW-SE anti-diagonals.
const AntiDiagonalN = 15
