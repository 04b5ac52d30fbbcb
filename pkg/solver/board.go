package solver

const (
	// BoardSize is the number of rows/columns in the (square) working board.
	BoardSize = 144
	// emptyCell marks an unoccupied board cell.
	emptyCell = 30
	// maxWordLength is a capacity hint for the longest expected dictionary word.
	maxWordLength = 17
)

// Word is the numeric form of a word, each letter 0 ('A') through 25 ('Z').
type Word []byte

// Letters counts how many of each letter A-Z are in a hand.
type Letters [26]int

type direction int

const (
	horizontal direction = iota
	vertical
)

type letterUsage int

const (
	// usageRemaining means there are still unused hand letters
	usageRemaining letterUsage = iota
	// usageOverused means the play needed more letters than the hand holds
	usageOverused
	// usageFinished means the play used the last hand letter
	usageFinished
)

// board is the working grid, stored row-major.
type board struct {
	arr []byte
}

func newBoard() *board {
	arr := make([]byte, BoardSize*BoardSize)
	for i := range arr {
		arr[i] = emptyCell
	}
	return &board{arr: arr}
}

func (b *board) get(row, col int) byte {
	return b.arr[row*BoardSize+col]
}

func (b *board) set(row, col int, val byte) {
	b.arr[row*BoardSize+col] = val
}

// playWord lays word down at (rowIdx, colIdx) in the given direction,
// consuming hand letters for every cell that was empty. It reports whether
// the placement is admissible (in bounds, touches existing tiles, does not
// entirely overlap, and conflicts with nothing already played), the indices
// it filled, the hand letters left over, and how much of the hand was used.
// boardLetters is updated in place for the cells that were filled.
func (b *board) playWord(word Word, rowIdx, colIdx int, dir direction, letters Letters, boardLetters *Letters) (bool, [][2]int, Letters, letterUsage) {
	played := make([][2]int, 0, maxWordLength)
	remaining := letters

	switch dir {
	case horizontal:
		if colIdx+len(word) >= BoardSize {
			return false, played, remaining, usageRemaining
		}
		// The word must start or end at an existing letter...
		validLoc := (colIdx != 0 && b.get(rowIdx, colIdx-1) != emptyCell) ||
			b.get(rowIdx, colIdx+len(word)) != emptyCell
		// ...or border one above or below
		if !validLoc {
			for cIdx := colIdx; cIdx < colIdx+len(word); cIdx++ {
				if (rowIdx < BoardSize-1 && b.get(rowIdx+1, cIdx) != emptyCell) ||
					(rowIdx > 0 && b.get(rowIdx-1, cIdx) != emptyCell) {
					validLoc = true
					break
				}
			}
		}
		if !validLoc {
			return false, played, remaining, usageRemaining
		}

		entirelyOverlaps := true
		for i, letter := range word {
			current := b.get(rowIdx, colIdx+i)
			if current == emptyCell {
				b.set(rowIdx, colIdx+i, letter)
				boardLetters[letter]++
				played = append(played, [2]int{rowIdx, colIdx + i})
				entirelyOverlaps = false
				if remaining[letter] == 0 {
					return false, played, remaining, usageOverused
				}
				remaining[letter]--
			} else if current != letter {
				return false, played, remaining, usageRemaining
			}
		}
		if allUsed(remaining) && !entirelyOverlaps {
			return true, played, remaining, usageFinished
		}
		return !entirelyOverlaps, played, remaining, usageRemaining

	default: // vertical
		if rowIdx+len(word) >= BoardSize {
			return false, played, remaining, usageRemaining
		}
		validLoc := (rowIdx != 0 && b.get(rowIdx-1, colIdx) != emptyCell) ||
			b.get(rowIdx+len(word), colIdx) != emptyCell
		if !validLoc {
			for rIdx := rowIdx; rIdx < rowIdx+len(word); rIdx++ {
				if (colIdx < BoardSize-1 && b.get(rIdx, colIdx+1) != emptyCell) ||
					(colIdx > 0 && b.get(rIdx, colIdx-1) != emptyCell) {
					validLoc = true
					break
				}
			}
		}
		if !validLoc {
			return false, played, remaining, usageRemaining
		}

		entirelyOverlaps := true
		for i, letter := range word {
			current := b.get(rowIdx+i, colIdx)
			if current == emptyCell {
				b.set(rowIdx+i, colIdx, letter)
				boardLetters[letter]++
				played = append(played, [2]int{rowIdx + i, colIdx})
				entirelyOverlaps = false
				if remaining[letter] == 0 {
					return false, played, remaining, usageOverused
				}
				remaining[letter]--
			} else if current != letter {
				return false, played, remaining, usageRemaining
			}
		}
		if allUsed(remaining) && !entirelyOverlaps {
			return true, played, remaining, usageFinished
		}
		return !entirelyOverlaps, played, remaining, usageRemaining
	}
}

// undoPlay clears the cells a play filled and gives their letters back to
// the board tally.
func (b *board) undoPlay(played [][2]int, boardLetters *Letters) {
	for _, idx := range played {
		old := b.get(idx[0], idx[1])
		boardLetters[old]--
		b.set(idx[0], idx[1], emptyCell)
	}
}

func allUsed(letters Letters) bool {
	for _, count := range letters {
		if count != 0 {
			return false
		}
	}
	return true
}

// colLimits finds the leftmost and rightmost columns at row where a play
// could touch existing tiles, looking at the row itself and its neighbors.
func colLimits(b *board, row, minCol, maxCol int) (int, int) {
	leftmost := maxCol
	rightmost := minCol
	occupied := func(col int) bool {
		if b.get(row, col) != emptyCell {
			return true
		}
		if row > 0 && b.get(row-1, col) != emptyCell {
			return true
		}
		if row < BoardSize-1 && b.get(row+1, col) != emptyCell {
			return true
		}
		return false
	}
	for col := minCol; col < maxCol; col++ {
		if occupied(col) {
			leftmost = col
			break
		}
	}
	for col := maxCol; col >= minCol; col-- {
		if occupied(col) {
			rightmost = col
			break
		}
	}
	return leftmost, rightmost
}

// rowLimits is the vertical analogue of colLimits.
func rowLimits(b *board, col, minRow, maxRow int) (int, int) {
	uppermost := maxRow
	lowermost := minRow
	occupied := func(row int) bool {
		if b.get(row, col) != emptyCell {
			return true
		}
		if col > 0 && b.get(row, col-1) != emptyCell {
			return true
		}
		if col < BoardSize-1 && b.get(row, col+1) != emptyCell {
			return true
		}
		return false
	}
	for row := minRow; row < maxRow; row++ {
		if occupied(row) {
			uppermost = row
			break
		}
	}
	for row := maxRow; row >= minRow; row-- {
		if occupied(row) {
			lowermost = row
			break
		}
	}
	return uppermost, lowermost
}
