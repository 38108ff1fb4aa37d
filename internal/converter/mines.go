package converter

import (
	dto "wager_backend/internal/api/dto/mines"
	"wager_backend/internal/model"
)

func ToMinesStateResponse(state model.MinesState) dto.StateResponse {
	return dto.StateResponse{
		SessionID:  state.SessionID,
		Stake:      state.Stake,
		GridWidth:  state.GridWidth,
		GridHeight: state.GridHeight,
		MineCount:  state.MineCount,
		Revealed:   state.Revealed,
		Status:     string(state.Status),
		Multiplier: state.Multiplier,
		Payout:     state.Payout,
		SafeLeft:   state.SafeLeft,
		CreatedAt:  state.CreatedAt,
	}
}

func ToRevealResponse(res model.RevealResult) dto.RevealResponse {
	return dto.RevealResponse{
		SessionID:     res.SessionID,
		Cell:          res.Cell,
		Hit:           res.Hit,
		Status:        string(res.Status),
		Revealed:      res.Revealed,
		MinePositions: res.MinePositions,
		Multiplier:    res.Multiplier,
		Payout:        res.Payout,
		SafeLeft:      res.SafeLeft,
	}
}

func ToSettlementResponse(settlement model.MinesSettlement) dto.SettlementResponse {
	return dto.SettlementResponse{
		SessionID:  settlement.SessionID,
		Stake:      settlement.Stake,
		Multiplier: settlement.Multiplier,
		Payout:     settlement.Payout,
		Profit:     settlement.Profit,
		Balance:    settlement.Balance,
	}
}
