package utils

import "oracle-manager-api/models"

// DeriveResult classifies a game outcome from the two scores. It is the only
// place a result label is computed; callers must re-derive whenever either
// score changes.
func DeriveResult(ourScore, opponentScore int) string {
	switch {
	case ourScore > opponentScore:
		return models.ResultWin
	case ourScore < opponentScore:
		return models.ResultLose
	default:
		return models.ResultDraw
	}
}
