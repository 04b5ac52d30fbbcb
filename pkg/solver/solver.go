// Package solver arranges a hand of letters into a crossword-style board
// where every horizontal and vertical run of two or more letters is a
// dictionary word and every hand letter is used exactly once.
package solver

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoValidWords means the hand cannot form any dictionary word at all.
	ErrNoValidWords = errors.New("no valid words can be formed from the current letters - dump and try again")
	// ErrNoSolution means the search exhausted its candidates or budget.
	ErrNoSolution = errors.New("no solution found - dump and try again")

	// errBudget aborts the recursion once maxWordsToCheck is exceeded.
	errBudget = errors.New("word check budget exhausted")
)

// Options tunes the search.
type Options struct {
	// FilterLettersOnBoard caps how many letters already on the board a
	// candidate word may reuse when candidate lists are re-filtered
	// between plies.
	FilterLettersOnBoard int
	// MaxWordsToCheck bounds the total number of candidate visits.
	MaxWordsToCheck int
}

// DefaultMaxWordsToCheck is used when Options.MaxWordsToCheck is zero.
const DefaultMaxWordsToCheck = 500000

// Solution is a solved board, cropped to its occupied bounds in
// BoardString and complete in Board.
type Solution struct {
	Board       []int      `json:"board"`
	BoardString [][]string `json:"board_string"`
	MinCol      int        `json:"min_col"`
	MaxCol      int        `json:"max_col"`
	MinRow      int        `json:"min_row"`
	MaxRow      int        `json:"max_row"`
}

// wordSet supports membership checks on numeric words.
type wordSet map[string]struct{}

func (s wordSet) contains(w []byte) bool {
	_, ok := s[string(w)]
	return ok
}

// search carries the state shared across the recursion.
type search struct {
	ctx           context.Context
	validSet      wordSet
	boardLetters  Letters
	wordsChecked  int
	maxWords      int
	filterOnBoard int
}

// ParseLetters converts a hand like "BANANAGRAMS" into letter counts.
// Whitespace is ignored; anything else outside A-Z is an error.
func ParseLetters(hand string) (Letters, error) {
	var letters Letters
	total := 0
	for _, r := range hand {
		switch {
		case r >= 'A' && r <= 'Z':
			letters[r-'A']++
			total++
		case r >= 'a' && r <= 'z':
			letters[r-'a']++
			total++
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			return letters, fmt.Errorf("invalid letter %q in hand", r)
		}
	}
	if total == 0 {
		return letters, fmt.Errorf("hand contains no letters")
	}
	return letters, nil
}

// Compile converts dictionary words to numeric form, longest first. Words
// of equal length keep their relative order.
func Compile(words []string) []Word {
	compiled := make([]Word, 0, len(words))
	for _, word := range words {
		converted := make(Word, 0, len(word))
		for _, r := range word {
			switch {
			case r >= 'A' && r <= 'Z':
				converted = append(converted, byte(r-'A'))
			case r >= 'a' && r <= 'z':
				converted = append(converted, byte(r-'a'))
			}
		}
		if len(converted) == 0 {
			continue
		}
		compiled = append(compiled, converted)
	}
	sort.SliceStable(compiled, func(i, j int) bool {
		return len(compiled[i]) > len(compiled[j])
	})
	return compiled
}

// isMakeable reports whether word can be formed from letters alone.
func isMakeable(word Word, letters Letters) bool {
	available := letters
	for _, letter := range word {
		if available[letter] == 0 {
			return false
		}
		available[letter]--
	}
	return true
}

// checkFilterAfterPlay keeps words playable right after the first word:
// every letter must come from the hand or from the set of letters the
// first word placed, reusing at most one board letter.
func checkFilterAfterPlay(letters Letters, word Word, playedOnBoard map[byte]struct{}) bool {
	alreadySeenNegative := false
	for _, letter := range word {
		_, onBoard := playedOnBoard[letter]
		switch {
		case letters[letter] == 0 && !onBoard:
			return false
		case letters[letter] <= 0 && alreadySeenNegative:
			return false
		case letters[letter] == 0:
			alreadySeenNegative = true
		default:
			letters[letter]--
		}
	}
	return true
}

// checkFilterAfterPlayLater keeps words playable deeper in the search:
// letters come from the hand, topped up by at most filterOnBoard letters
// currently on the board.
func checkFilterAfterPlayLater(current Letters, boardLetters Letters, word Word, filterOnBoard int) bool {
	numFromBoard := 0
	for _, letter := range word {
		if current[letter] == 0 {
			if numFromBoard == filterOnBoard {
				return false
			}
			if boardLetters[letter] == 0 {
				return false
			}
			boardLetters[letter]--
			numFromBoard++
		} else {
			current[letter]--
		}
	}
	return true
}

// isBoardValidHorizontal checks every word the board contains after a
// horizontal play of (row, startCol..endCol). It does not check that the
// board is contiguous; placement enforces that.
func isBoardValidHorizontal(b *board, minCol, maxCol, minRow, maxRow, row, startCol, endCol int, valid wordSet) bool {
	current := make([]byte, 0, maxWordLength)

	// Find the furthest left column the new play is connected to
	minimumCol := startCol
	for minimumCol > minCol {
		if b.get(row, minimumCol) == emptyCell {
			minimumCol++
			break
		}
		minimumCol--
	}
	minimumCol = max(minimumCol, minCol)

	// Check across the row where the word was played
	for colIdx := minimumCol; colIdx <= maxCol; colIdx++ {
		if b.get(row, colIdx) != emptyCell {
			current = append(current, b.get(row, colIdx))
		} else {
			// A set turns out to be faster than a trie here, at least for
			// smaller hands
			if len(current) > 1 && !valid.contains(current) {
				return false
			}
			current = current[:0]
			if colIdx > endCol {
				break
			}
		}
	}
	if len(current) > 1 && !valid.contains(current) {
		return false
	}

	// Check down each column where a letter was played
	for colIdx := startCol; colIdx <= endCol; colIdx++ {
		current = current[:0]
		minimumRow := row
		for minimumRow > minRow {
			if b.get(minimumRow, colIdx) == emptyCell {
				minimumRow++
				break
			}
			minimumRow--
		}
		minimumRow = max(minimumRow, minRow)
		for rowIdx := minimumRow; rowIdx <= maxRow; rowIdx++ {
			if b.get(rowIdx, colIdx) != emptyCell {
				current = append(current, b.get(rowIdx, colIdx))
			} else {
				if len(current) > 1 && !valid.contains(current) {
					return false
				}
				current = current[:0]
				if rowIdx > row {
					break
				}
			}
		}
		if len(current) > 1 && !valid.contains(current) {
			return false
		}
	}
	return true
}

// isBoardValidVertical is the analogue for a vertical play of
// (startRow..endRow, col).
func isBoardValidVertical(b *board, minCol, maxCol, minRow, maxRow, startRow, endRow, col int, valid wordSet) bool {
	current := make([]byte, 0, maxWordLength)

	minimumRow := startRow
	for minimumRow > minRow {
		if b.get(minimumRow, col) == emptyCell {
			minimumRow++
			break
		}
		minimumRow--
	}
	minimumRow = max(minimumRow, minRow)

	// Check down the column where the word was played
	for rowIdx := minimumRow; rowIdx <= maxRow; rowIdx++ {
		if b.get(rowIdx, col) != emptyCell {
			current = append(current, b.get(rowIdx, col))
		} else {
			if len(current) > 1 && !valid.contains(current) {
				return false
			}
			current = current[:0]
			if rowIdx > endRow {
				break
			}
		}
	}
	if len(current) > 1 && !valid.contains(current) {
		return false
	}

	// Check across each row where a letter was played
	for rowIdx := startRow; rowIdx <= endRow; rowIdx++ {
		current = current[:0]
		minimumCol := col
		for minimumCol > minCol {
			if b.get(rowIdx, minimumCol) == emptyCell {
				minimumCol++
				break
			}
			minimumCol--
		}
		minimumCol = max(minimumCol, minCol)
		for colIdx := minimumCol; colIdx <= maxCol; colIdx++ {
			if b.get(rowIdx, colIdx) != emptyCell {
				current = append(current, b.get(rowIdx, colIdx))
			} else {
				if len(current) > 1 && !valid.contains(current) {
					return false
				}
				current = current[:0]
				if colIdx > col {
					break
				}
			}
		}
		if len(current) > 1 && !valid.contains(current) {
			return false
		}
	}
	return true
}

// tryPlayWordHorizontal tries word at every reachable horizontal position.
func tryPlayWordHorizontal(b *board, word Word, minCol, maxCol, minRow, maxRow int, words []Word, letters Letters, depth int, st *search) (bool, int, int, int, int, error) {
	// Try across all rows, from one before the played area to one after
	for rowIdx := max(minRow-1, 0); rowIdx <= min(maxRow+1, BoardSize-1); rowIdx++ {
		leftmostCol, rightmostCol := colLimits(b, rowIdx, minCol, maxCol)
		// For each row, try all columns from the farthest out the word could reach
		for colIdx := max(leftmostCol-len(word), 0); colIdx <= min(rightmostCol+1, BoardSize-1); colIdx++ {
			ok, played, remaining, usage := b.playWord(word, rowIdx, colIdx, horizontal, letters, &st.boardLetters)
			if !ok {
				b.undoPlay(played, &st.boardLetters)
				continue
			}
			newMinCol := min(minCol, colIdx)
			newMaxCol := max(maxCol, colIdx+len(word))
			newMinRow := min(minRow, rowIdx)
			newMaxRow := max(maxRow, rowIdx)
			if !isBoardValidHorizontal(b, newMinCol, newMaxCol, newMinRow, newMaxRow, rowIdx, colIdx, colIdx+len(word)-1, st.validSet) {
				// The play formed an invalid word somewhere
				b.undoPlay(played, &st.boardLetters)
				continue
			}
			if usage == usageFinished {
				return true, newMinCol, newMaxCol, newMinRow, newMaxRow, nil
			}
			// Re-filter the candidates against the letters still in hand
			nextWords := make([]Word, 0, len(words)/2)
			for _, candidate := range words {
				if checkFilterAfterPlayLater(letters, st.boardLetters, candidate, st.filterOnBoard) {
					nextWords = append(nextWords, candidate)
				}
			}
			found, rMinCol, rMaxCol, rMinRow, rMaxRow, err := playFurther(b, newMinCol, newMaxCol, newMinRow, newMaxRow, nextWords, remaining, depth+1, st)
			if err != nil {
				return false, 0, 0, 0, 0, err
			}
			if found {
				return true, rMinCol, rMaxCol, rMinRow, rMaxRow, nil
			}
			// Undoing beats cloning the board before every play
			b.undoPlay(played, &st.boardLetters)
		}
	}
	return false, 0, 0, 0, 0, nil
}

// tryPlayWordVertical tries word at every reachable vertical position.
func tryPlayWordVertical(b *board, word Word, minCol, maxCol, minRow, maxRow int, words []Word, letters Letters, depth int, st *search) (bool, int, int, int, int, error) {
	for colIdx := max(minCol-1, 0); colIdx <= min(maxCol+1, BoardSize-1); colIdx++ {
		uppermostRow, lowermostRow := rowLimits(b, colIdx, minRow, maxRow)
		for rowIdx := max(uppermostRow-len(word), 0); rowIdx <= min(lowermostRow+1, BoardSize-1); rowIdx++ {
			ok, played, remaining, usage := b.playWord(word, rowIdx, colIdx, vertical, letters, &st.boardLetters)
			if !ok {
				b.undoPlay(played, &st.boardLetters)
				continue
			}
			newMinCol := min(minCol, colIdx)
			newMaxCol := max(maxCol, colIdx)
			newMinRow := min(minRow, rowIdx)
			newMaxRow := max(maxRow, rowIdx+len(word))
			if !isBoardValidVertical(b, newMinCol, newMaxCol, newMinRow, newMaxRow, rowIdx, rowIdx+len(word)-1, colIdx, st.validSet) {
				b.undoPlay(played, &st.boardLetters)
				continue
			}
			if usage == usageFinished {
				return true, newMinCol, newMaxCol, newMinRow, newMaxRow, nil
			}
			nextWords := make([]Word, 0, len(words)/2)
			for _, candidate := range words {
				if checkFilterAfterPlayLater(letters, st.boardLetters, candidate, st.filterOnBoard) {
					nextWords = append(nextWords, candidate)
				}
			}
			found, rMinCol, rMaxCol, rMinRow, rMaxRow, err := playFurther(b, newMinCol, newMaxCol, newMinRow, newMaxRow, nextWords, remaining, depth+1, st)
			if err != nil {
				return false, 0, 0, 0, 0, err
			}
			if found {
				return true, rMinCol, rMaxCol, rMinRow, rMaxRow, nil
			}
			b.undoPlay(played, &st.boardLetters)
		}
	}
	return false, 0, 0, 0, 0, nil
}

// playFurther recursively extends the board until the hand is used up,
// alternating horizontal and vertical plies as a heuristic.
func playFurther(b *board, minCol, maxCol, minRow, maxRow int, words []Word, letters Letters, depth int, st *search) (bool, int, int, int, int, error) {
	if st.wordsChecked > st.maxWords {
		return false, minCol, maxCol, minRow, maxRow, errBudget
	}
	if err := st.ctx.Err(); err != nil {
		return false, minCol, maxCol, minRow, maxRow, err
	}

	if depth%2 == 1 {
		for _, word := range words {
			st.wordsChecked++
			found, rMinCol, rMaxCol, rMinRow, rMaxRow, err := tryPlayWordHorizontal(b, word, minCol, maxCol, minRow, maxRow, words, letters, depth, st)
			if err != nil {
				return false, minCol, maxCol, minRow, maxRow, err
			}
			if found {
				return true, rMinCol, rMaxCol, rMinRow, rMaxRow, nil
			}
		}
		// If nothing fit horizontally, try vertically instead
		for _, word := range words {
			st.wordsChecked++
			found, rMinCol, rMaxCol, rMinRow, rMaxRow, err := tryPlayWordVertical(b, word, minCol, maxCol, minRow, maxRow, words, letters, depth, st)
			if err != nil {
				return false, minCol, maxCol, minRow, maxRow, err
			}
			if found {
				return true, rMinCol, rMaxCol, rMinRow, rMaxRow, nil
			}
		}
		return false, minCol, maxCol, minRow, maxRow, nil
	}

	for _, word := range words {
		st.wordsChecked++
		found, rMinCol, rMaxCol, rMinRow, rMaxRow, err := tryPlayWordVertical(b, word, minCol, maxCol, minRow, maxRow, words, letters, depth, st)
		if err != nil {
			return false, minCol, maxCol, minRow, maxRow, err
		}
		if found {
			return true, rMinCol, rMaxCol, rMinRow, rMaxRow, nil
		}
	}
	// At depth 0 a horizontal pass would only re-form vertical words that
	// already failed
	if depth == 0 {
		return false, minCol, maxCol, minRow, maxRow, nil
	}
	for _, word := range words {
		st.wordsChecked++
		found, rMinCol, rMaxCol, rMinRow, rMaxRow, err := tryPlayWordHorizontal(b, word, minCol, maxCol, minRow, maxRow, words, letters, depth, st)
		if err != nil {
			return false, minCol, maxCol, minRow, maxRow, err
		}
		if found {
			return true, rMinCol, rMaxCol, rMinRow, rMaxRow, nil
		}
	}
	return false, minCol, maxCol, minRow, maxRow, nil
}

// SolveFromScratch builds a fresh board from the hand. The dictionary must
// come from Compile. It honors ctx between plies and gives up with
// ErrNoSolution once opts.MaxWordsToCheck candidates have been visited.
func SolveFromScratch(ctx context.Context, letters Letters, dictionary []Word, opts Options) (*Solution, error) {
	if opts.FilterLettersOnBoard < 0 {
		opts.FilterLettersOnBoard = 0
	}
	if opts.MaxWordsToCheck <= 0 {
		opts.MaxWordsToCheck = DefaultMaxWordsToCheck
	}

	validWords := make([]Word, 0, len(dictionary))
	for _, word := range dictionary {
		if isMakeable(word, letters) {
			validWords = append(validWords, word)
		}
	}
	if len(validWords) == 0 {
		return nil, ErrNoValidWords
	}
	validSet := make(wordSet, len(validWords))
	for _, word := range validWords {
		validSet[string(word)] = struct{}{}
	}

	st := &search{
		ctx:           ctx,
		validSet:      validSet,
		maxWords:      opts.MaxWordsToCheck,
		filterOnBoard: opts.FilterLettersOnBoard,
	}

	// Try each makeable word as the seed, played horizontally at center
	b := newBoard()
	row := BoardSize / 2
	for wordNum, word := range validWords {
		colStart := BoardSize/2 - len(word)/2
		useLetters := letters
		st.boardLetters = Letters{}
		for i, letter := range word {
			b.set(row, colStart+i, letter)
			st.boardLetters[letter]++
			useLetters[letter]--
		}
		minCol, maxCol, minRow, maxRow := colStart, colStart+len(word)-1, row, row

		if allUsed(useLetters) {
			return newSolution(b, minCol, maxCol, minRow, maxRow), nil
		}

		// Keep only words playable with the leftover letters plus the seed's
		// tiles
		wordLetters := make(map[byte]struct{}, len(word))
		for _, letter := range word {
			wordLetters[letter] = struct{}{}
		}
		nextWords := make([]Word, 0, len(validWords))
		for i := wordNum; i < len(validWords); i++ {
			if checkFilterAfterPlay(useLetters, validWords[i], wordLetters) {
				nextWords = append(nextWords, validWords[i])
			}
		}

		found, rMinCol, rMaxCol, rMinRow, rMaxRow, err := playFurther(b, minCol, maxCol, minRow, maxRow, nextWords, useLetters, 0, st)
		if err != nil {
			if errors.Is(err, errBudget) {
				break
			}
			return nil, err
		}
		if found {
			return newSolution(b, rMinCol, rMaxCol, rMinRow, rMaxRow), nil
		}

		// Clear the seed before trying the next one
		for col := minCol; col <= maxCol; col++ {
			b.set(row, col, emptyCell)
		}
	}
	return nil, ErrNoSolution
}

// boardToStrings renders the occupied section of the board, one string per
// cell, with " " for empty cells.
func boardToStrings(b *board, minCol, maxCol, minRow, maxRow int) [][]string {
	rows := make([][]string, 0, maxRow-minRow+1)
	for row := minRow; row <= maxRow; row++ {
		cells := make([]string, 0, maxCol-minCol+1)
		for col := minCol; col <= maxCol; col++ {
			val := b.get(row, col)
			if val == emptyCell {
				cells = append(cells, " ")
			} else {
				cells = append(cells, string(rune('A'+val)))
			}
		}
		rows = append(rows, cells)
	}
	return rows
}

func newSolution(b *board, minCol, maxCol, minRow, maxRow int) *Solution {
	cells := make([]int, len(b.arr))
	for i, val := range b.arr {
		cells[i] = int(val)
	}
	return &Solution{
		Board:       cells,
		BoardString: boardToStrings(b, minCol, maxCol, minRow, maxRow),
		MinCol:      minCol,
		MaxCol:      maxCol,
		MinRow:      minRow,
		MaxRow:      maxRow,
	}
}
