package engine

import "testing"

func TestEnPassantCapturable(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"no target", InitialFEN, false},
		{"target without capturing pawn", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", false},
		{"capture available", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", true},
		{"capture from either side", "4k3/8/8/2PpP3/8/8/8/4K3 w - d6 0 2", true},
		{"capturing pawn is pinned", "4k3/8/8/r2pP2K/8/8/8/8 w - d6 0 2", false},
		{"capturing pawn belongs to the mover's opponent", "4k3/8/8/3pp3/8/8/8/4K3 w - d6 0 2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnPassantCapturable(MustBoardFromFEN(tt.fen)); got != tt.want {
				t.Errorf("EnPassantCapturable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSamePosition(t *testing.T) {
	play := func(moves ...string) string {
		board := NewInitialBoard()
		for _, s := range moves {
			next, _, err := Apply(board, mv(t, s))
			if err != nil {
				t.Fatalf("Apply(%s): %v", s, err)
			}
			board = next
		}
		return BoardToFEN(board)
	}

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{
			name: "transposition ending on a double step",
			a:    play("e2e4", "e7e5", "g1f3", "b8c6"),
			b:    play("g1f3", "b8c6", "e2e4", "e7e5"),
			want: true,
		},
		{
			name: "counters ignored",
			a:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			b:    "4k3/8/8/8/8/8/8/4K3 w - - 40 70",
			want: true,
		},
		{
			name: "live en passant target counts",
			a:    "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			b:    "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 2",
			want: false,
		},
		{
			name: "side to move",
			a:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			b:    "4k3/8/8/8/8/8/8/4K3 b - - 0 1",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SamePosition(MustBoardFromFEN(tt.a), MustBoardFromFEN(tt.b)); got != tt.want {
				t.Errorf("SamePosition(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if !SamePosition(nil, nil) || SamePosition(nil, NewInitialBoard()) {
		t.Error("nil handling broken")
	}
}
