package converter

import (
	dto "wager_backend/internal/api/dto/roulette"
	"wager_backend/internal/model"
)

func ToBetInfo(bet model.Bet) dto.BetInfo {
	return dto.BetInfo{
		Amount: bet.Amount,
		Kind:   string(bet.Spec.Kind),
		Token:  bet.Token,
	}
}

func ToPendingResponse(bets []model.Bet) dto.PendingResponse {
	result := dto.PendingResponse{
		Bets: make([]dto.BetInfo, len(bets)),
	}
	for i, bet := range bets {
		result.Bets[i] = ToBetInfo(bet)
		result.Total += bet.Amount
	}
	return result
}

func ToSpinResponse(spin model.RouletteSpin) dto.SpinResponse {
	result := dto.SpinResponse{
		Number:   spin.Outcome.Number,
		IsZero:   spin.Outcome.IsZero,
		IsRed:    spin.Outcome.IsRed,
		IsBlack:  spin.Outcome.IsBlack,
		IsEven:   spin.Outcome.IsEven,
		Accounts: make([]dto.AccountRound, len(spin.Accounts)),
	}
	for i, round := range spin.Accounts {
		account := dto.AccountRound{
			Account:     round.Account,
			TotalStake:  round.Result.TotalStake,
			TotalPayout: round.Result.TotalPayout,
			Balance:     round.Balance,
			Bets:        make([]dto.BetResult, len(round.Result.Bets)),
		}
		for j, betRes := range round.Result.Bets {
			account.Bets[j] = dto.BetResult{
				Bet:    ToBetInfo(betRes.Bet),
				Payout: betRes.Payout,
			}
		}
		result.Accounts[i] = account
	}
	return result
}
