// FILE: internal/notation/notation_test.go
package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers/internal/board"
	"checkers/internal/core"
)

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(10, 10)
	require.NoError(t, err)
	return b
}

func TestParseMove(t *testing.T) {
	b := testBoard(t)

	tests := []struct {
		name  string
		input string
		want  board.Move
	}{
		{
			name:  "plain",
			input: "A6 B5",
			want: board.Move{
				Source: board.NewIndex(0, 5, core.White),
				Target: board.NewIndex(1, 4, core.White),
			},
		},
		{
			name:  "lowercase",
			input: "c7 d6",
			want: board.Move{
				Source: board.NewIndex(2, 6, core.White),
				Target: board.NewIndex(3, 5, core.White),
			},
		},
		{
			name:  "extra whitespace",
			input: "  E4   F3  ",
			want: board.Move{
				Source: board.NewIndex(4, 3, core.White),
				Target: board.NewIndex(5, 2, core.White),
			},
		},
		{
			name:  "two digit row",
			input: "A10 B9",
			want: board.Move{
				Source: board.NewIndex(0, 9, core.White),
				Target: board.NewIndex(1, 8, core.White),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.input, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	b := testBoard(t)

	inputs := []string{
		"",
		"A6",
		"A6 B5 C4",
		"A6B5",
		"66 B5",
		"A0 B5",
		"A6 K5",
		"A11 B5",
		"A6 B11",
	}

	for _, input := range inputs {
		_, err := ParseMove(input, b)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, core.ErrParse, "input %q", input)
	}
}

func TestParseSquare(t *testing.T) {
	b := testBoard(t)

	idx, err := ParseSquare("b5", b)
	require.NoError(t, err)
	assert.Equal(t, board.NewIndex(1, 4, core.White), idx)

	_, err = ParseSquare("B5 C4", b)
	assert.ErrorIs(t, err, core.ErrParse)
	_, err = ParseSquare("K5", b)
	assert.ErrorIs(t, err, core.ErrParse)
}

func TestIsMove(t *testing.T) {
	assert.True(t, IsMove("A6 B5"))
	assert.True(t, IsMove("a6 b5"))
	assert.True(t, IsMove("  a10   b9 "))
	assert.False(t, IsMove("new"))
	assert.False(t, IsMove("A6"))
	assert.False(t, IsMove("moves b5"))
}

func TestFormat(t *testing.T) {
	mv := board.Move{
		Source: board.NewIndex(2, 5, core.White),
		Target: board.NewIndex(1, 4, core.White),
	}
	assert.Equal(t, "C6 B5", Format(mv))
	assert.Equal(t, "A10", FormatSquare(board.NewIndex(0, 9, core.White)))
}

func TestFormatOriented(t *testing.T) {
	b := testBoard(t)

	white := board.NewIndex(3, 2, core.White)
	assert.Equal(t, "D3", FormatOriented(b, white))

	// The same square addressed from Black's frame names identically.
	black := b.Reverse(white)
	assert.Equal(t, "D3", FormatOriented(b, black))
}

func TestRoundTrip(t *testing.T) {
	b := testBoard(t)

	for _, text := range []string{"A6 B5", "C10 D9", "J1 I2"} {
		mv, err := ParseMove(text, b)
		require.NoError(t, err)
		assert.Equal(t, text, Format(mv))
	}
}
