package wallet

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"wager_backend/internal/api/apierr"
	dto "wager_backend/internal/api/dto/wallet"
	"wager_backend/internal/converter"
	"wager_backend/internal/service"
	"wager_backend/pkg/req"
	"wager_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LedgerService
	Log  *zap.Logger
}

type Handler struct {
	serv      service.LedgerService
	validator *validator.Validate
	log       *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:      deps.Serv,
		validator: validator.New(),
		log:       deps.Log,
	}
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	account, err := strconv.ParseInt(chi.URLParam(r, "account"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("invalid account"))
		return
	}

	balance, err := h.serv.GetBalance(r.Context(), account)
	if err != nil {
		h.fail(w, r, "failed to get balance", err)
		return
	}

	render.JSON(w, r, converter.ToBalanceResponse(account, balance))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	account, err := strconv.ParseInt(chi.URLParam(r, "account"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("invalid account"))
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.serv.History(r.Context(), account, limit)
	if err != nil {
		h.fail(w, r, "failed to get history", err)
		return
	}

	render.JSON(w, r, converter.ToHistoryResponse(history))
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.TransferRequest](h, w, r)
	if !ok {
		return
	}

	fromBalance, toBalance, err := h.serv.Transfer(r.Context(), payload.From, payload.To, payload.Amount)
	if err != nil {
		h.fail(w, r, "failed to transfer", err)
		return
	}

	render.JSON(w, r, dto.TransferResponse{
		FromBalance: fromBalance,
		ToBalance:   toBalance,
	})
}

func (h *Handler) Bonus(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.BonusRequest](h, w, r)
	if !ok {
		return
	}

	balance, err := h.serv.ClaimBonus(r.Context(), payload.Account)
	if err != nil {
		h.fail(w, r, "failed to claim bonus", err)
		return
	}

	render.JSON(w, r, converter.ToBalanceResponse(payload.Account, balance))
}

func (h *Handler) Grant(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.AdjustRequest](h, w, r)
	if !ok {
		return
	}

	balance, err := h.serv.Grant(r.Context(), payload.Account, payload.Amount)
	if err != nil {
		h.fail(w, r, "failed to grant", err)
		return
	}

	render.JSON(w, r, converter.ToBalanceResponse(payload.Account, balance))
}

func (h *Handler) Confiscate(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.AdjustRequest](h, w, r)
	if !ok {
		return
	}

	balance, err := h.serv.Confiscate(r.Context(), payload.Account, payload.Amount)
	if err != nil {
		h.fail(w, r, "failed to confiscate", err)
		return
	}

	render.JSON(w, r, converter.ToBalanceResponse(payload.Account, balance))
}

func (h *Handler) SetBalance(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.SetBalanceRequest](h, w, r)
	if !ok {
		return
	}

	balance, err := h.serv.SetBalance(r.Context(), payload.Account, payload.Amount)
	if err != nil {
		h.fail(w, r, "failed to set balance", err)
		return
	}

	render.JSON(w, r, converter.ToBalanceResponse(payload.Account, balance))
}

func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	entries, err := h.serv.TopBalances(r.Context(), n)
	if err != nil {
		h.fail(w, r, "failed to get top balances", err)
		return
	}

	render.JSON(w, r, converter.ToTopResponse(entries))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	account, err := strconv.ParseInt(chi.URLParam(r, "account"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("invalid account"))
		return
	}

	stats, err := h.serv.Stats(r.Context(), account)
	if err != nil {
		h.fail(w, r, "failed to get stats", err)
		return
	}

	render.JSON(w, r, converter.ToStatsResponse(*stats))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	render.Status(r, apierr.StatusCode(err))
	render.JSON(w, r, resp.Error(apierr.Message(err)))
}

// decode разбирает и валидирует тело запроса; при ошибке ответ уже записан.
func decode[T any](h *Handler, w http.ResponseWriter, r *http.Request) (T, bool) {
	payload, err := req.Decode[T](r.Body)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("failed to decode request body"))
		return payload, false
	}
	if err = h.validator.Struct(payload); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.ValidationError(err.(validator.ValidationErrors)))
		return payload, false
	}
	return payload, true
}
