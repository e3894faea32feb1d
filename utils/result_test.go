package utils

import (
	"testing"

	"oracle-manager-api/models"
)

func TestDeriveResult(t *testing.T) {
	tests := []struct {
		name          string
		ourScore      int
		opponentScore int
		want          string
	}{
		{"clear win", 3, 1, models.ResultWin},
		{"narrow win", 1, 0, models.ResultWin},
		{"clear loss", 0, 4, models.ResultLose},
		{"narrow loss", 2, 3, models.ResultLose},
		{"scoreless draw", 0, 0, models.ResultDraw},
		{"scoring draw", 2, 2, models.ResultDraw},
		{"high scoring draw", 7, 7, models.ResultDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveResult(tt.ourScore, tt.opponentScore); got != tt.want {
				t.Fatalf("DeriveResult(%d, %d) = %q, want %q", tt.ourScore, tt.opponentScore, got, tt.want)
			}
		})
	}
}
