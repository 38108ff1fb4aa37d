package roulette

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"wager_backend/internal/api/apierr"
	dto "wager_backend/internal/api/dto/roulette"
	"wager_backend/internal/converter"
	"wager_backend/internal/service"
	"wager_backend/pkg/req"
	"wager_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.RouletteService
	Log  *zap.Logger
}

type Handler struct {
	serv      service.RouletteService
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

func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.PlaceBetRequest](h, w, r)
	if !ok {
		return
	}

	bet, balance, err := h.serv.PlaceBet(r.Context(), payload.Account, payload.Amount, payload.Bet)
	if err != nil {
		h.fail(w, r, "failed to place bet", err)
		return
	}

	render.JSON(w, r, dto.PlaceBetResponse{
		Bet:     converter.ToBetInfo(*bet),
		Balance: balance,
	})
}

func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.PendingRequest](h, w, r)
	if !ok {
		return
	}

	render.JSON(w, r, converter.ToPendingResponse(h.serv.PendingBets(payload.Account)))
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.PendingRequest](h, w, r)
	if !ok {
		return
	}

	refunded, err := h.serv.ClearBets(r.Context(), payload.Account)
	if err != nil {
		h.fail(w, r, "failed to clear bets", err)
		return
	}

	render.JSON(w, r, dto.ClearResponse{Refunded: refunded})
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	spin, err := h.serv.Spin(r.Context())
	if err != nil {
		h.fail(w, r, "failed to spin", err)
		return
	}

	render.JSON(w, r, converter.ToSpinResponse(*spin))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	render.Status(r, apierr.StatusCode(err))
	render.JSON(w, r, resp.Error(apierr.Message(err)))
}

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
