package mines

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"wager_backend/internal/api/apierr"
	dto "wager_backend/internal/api/dto/mines"
	"wager_backend/internal/converter"
	"wager_backend/internal/service"
	"wager_backend/pkg/req"
	"wager_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.MinesService
	Log  *zap.Logger
}

type Handler struct {
	serv      service.MinesService
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

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.StartRequest](h, w, r)
	if !ok {
		return
	}

	state, err := h.serv.Start(r.Context(), payload.Account, payload.Stake,
		payload.GridWidth, payload.GridHeight, payload.MineCount)
	if err != nil {
		h.fail(w, r, "failed to start mines session", err)
		return
	}

	render.JSON(w, r, converter.ToMinesStateResponse(*state))
}

func (h *Handler) Reveal(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.RevealRequest](h, w, r)
	if !ok {
		return
	}

	result, err := h.serv.Reveal(r.Context(), payload.SessionID, payload.Account, payload.Cell)
	if err != nil {
		h.fail(w, r, "failed to reveal cell", err)
		return
	}

	render.JSON(w, r, converter.ToRevealResponse(*result))
}

func (h *Handler) CashOut(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.SessionRequest](h, w, r)
	if !ok {
		return
	}

	settlement, err := h.serv.CashOut(r.Context(), payload.SessionID, payload.Account)
	if err != nil {
		h.fail(w, r, "failed to cash out", err)
		return
	}

	render.JSON(w, r, converter.ToSettlementResponse(*settlement))
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.SessionRequest](h, w, r)
	if !ok {
		return
	}

	if err := h.serv.Cancel(r.Context(), payload.SessionID, payload.Account); err != nil {
		h.fail(w, r, "failed to cancel session", err)
		return
	}

	render.JSON(w, r, resp.OK())
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.SessionRequest](h, w, r)
	if !ok {
		return
	}

	state, err := h.serv.Describe(payload.SessionID, payload.Account)
	if err != nil {
		h.fail(w, r, "failed to describe session", err)
		return
	}

	render.JSON(w, r, converter.ToMinesStateResponse(*state))
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
