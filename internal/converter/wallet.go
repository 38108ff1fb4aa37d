package converter

import (
	dto "wager_backend/internal/api/dto/wallet"
	"wager_backend/internal/model"
)

func ToBalanceResponse(account, balance int64) dto.BalanceResponse {
	return dto.BalanceResponse{
		Account: account,
		Balance: balance,
	}
}

func ToHistoryResponse(history []model.Transaction) dto.HistoryResponse {
	txs := make([]dto.Transaction, len(history))
	for i, tx := range history {
		txs[i] = dto.Transaction{
			ID:        tx.ID,
			From:      tx.FromAccount,
			To:        tx.ToAccount,
			Amount:    tx.Amount,
			Kind:      string(tx.Kind),
			CreatedAt: tx.CreatedAt,
		}
	}
	return dto.HistoryResponse{Transactions: txs}
}

func ToTopResponse(entries []model.BalanceEntry) dto.TopResponse {
	result := make([]dto.TopEntry, len(entries))
	for i, e := range entries {
		result[i] = dto.TopEntry{
			Account: e.Account,
			Balance: e.Balance,
		}
	}
	return dto.TopResponse{Entries: result}
}

func ToStatsResponse(stats model.AccountStats) dto.StatsResponse {
	return dto.StatsResponse{
		Account:       stats.Account,
		Transactions:  stats.Transactions,
		TotalReceived: stats.TotalReceived,
		TotalSent:     stats.TotalSent,
	}
}
