package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ravandpay/creditmock/internal/models"
	"github.com/ravandpay/creditmock/internal/services"
)

// creditSourceAccountNumber is the static source-account display value the
// per-cardholder payment listing carries.
const creditSourceAccountNumber = "101310810707074987"

// reviewDate is the static review date attached to payment listings.
const reviewDate = "1404/02/17"

const maxBodyBytes = 1_048_576 // 1 MB

// CreditHandler shapes HTTP requests and responses for the credit ledger
// core. All business rules live in the service; this layer only decodes,
// dispatches and serializes.
type CreditHandler struct {
	service   *services.CreditService
	validator *services.ValidationHelper
}

func NewCreditHandler(service *services.CreditService) *CreditHandler {
	return &CreditHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// Register opens a credit account for a cardholder
// @Summary Register a cardholder
// @Description Create the cardholder's account with an opening credit amount
// @Tags credit
// @Accept json
// @Produce json
// @Param cardholder_id path string true "Cardholder ID"
// @Param request body object{credit_amount=string} true "Opening credit amount"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Router /cardholder/{cardholder_id}/credit/register [post]
func (h *CreditHandler) Register(w http.ResponseWriter, r *http.Request) {
	cardholderID := chi.URLParam(r, "cardholder_id")

	var req struct {
		CreditAmount any `json:"credit_amount"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	json.NewDecoder(r.Body).Decode(&req) // tolerant: a bad body registers with zero credit

	balance, err := h.service.Register(cardholderID, req.CreditAmount)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyRegistered) {
			respondError(w, http.StatusUnprocessableEntity, msgAlreadyRegistered)
			return
		}
		log.Printf("[CREDIT] register failed for %s: %v", cardholderID, err)
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondOK(w, map[string]any{"credit_balance": balance}, msgSuccess)
}

// Adjust applies a single credit/debit adjustment
// @Summary Adjust a cardholder's credit balance
// @Tags credit
// @Accept json
// @Produce json
// @Param cardholder_id path string true "Cardholder ID"
// @Param request body object{credit_amount=string,type=string} true "Adjustment"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cardholder/{cardholder_id}/credit/adjustment [post]
func (h *CreditHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	cardholderID := chi.URLParam(r, "cardholder_id")

	var req struct {
		CreditAmount any    `json:"credit_amount"`
		Type         string `json:"type"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, msgInvalidAmount)
		return
	}

	balance, err := h.service.Adjust(cardholderID, req.CreditAmount, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			respondError(w, http.StatusNotFound, msgUserNotFound)
		case errors.Is(err, services.ErrInvalidAmount):
			respondError(w, http.StatusUnprocessableEntity, msgInvalidAmount)
		case errors.Is(err, services.ErrInvalidType):
			respondError(w, http.StatusUnprocessableEntity, msgInvalidType)
		default:
			log.Printf("[CREDIT] adjust failed for %s: %v", cardholderID, err)
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondOK(w, map[string]any{"credit_balance": balance}, msgSuccess)
}

// BatchAdjust applies a list of adjustments with per-item isolation
// @Summary Batch credit adjustments
// @Description Accepts an array, a single adjustment object, or a wrapped "credits" array; items fail independently
// @Tags credit
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /credit/adjustment [post]
func (h *CreditHandler) BatchAdjust(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, msgInternalError)
		return
	}

	items := normalizeBatch(body)
	results := h.service.BatchAdjust(items)
	respondOK(w, results, msgSuccess)
}

// ListAccounts returns the full account snapshot
// @Summary List accounts
// @Tags credit
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /credit/account [get]
func (h *CreditHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	list := make([]map[string]any, 0, len(accounts))
	for _, account := range accounts {
		list = append(list, map[string]any{
			"cardholder_id": account.CardholderID,
			"account": map[string]any{
				"account_number": account.AccountNumber,
				"balance":        account.Balance,
			},
			"credit": map[string]any{
				"status":  account.Status,
				"balance": account.CreditBalance,
			},
		})
	}

	respondOK(w, map[string]any{"has_more": false, "accounts": list}, msgFetched)
}

// CreditHistory lists one cardholder's adjustments, newest first
// @Summary Credit history for a cardholder
// @Tags credit
// @Produce json
// @Param cardholder_id path string true "Cardholder ID"
// @Success 200 {object} map[string]interface{}
// @Router /cardholder/{cardholder_id}/credit [get]
func (h *CreditHandler) CreditHistory(w http.ResponseWriter, r *http.Request) {
	cardholderID := chi.URLParam(r, "cardholder_id")

	logs, err := h.service.CreditHistory(cardholderID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondOK(w, map[string]any{"has_more": false, "credits": creditList(logs)}, msgFetched)
}

// GlobalCreditHistory lists recent adjustments across all cardholders
// @Summary Global credit history
// @Description Newest first, capped at 50 entries
// @Tags credit
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /credit [get]
func (h *CreditHandler) GlobalCreditHistory(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.GlobalCreditHistory()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondOK(w, map[string]any{"has_more": false, "credits": creditList(logs)}, msgFetched)
}

// UpdateStatus toggles a cardholder's credit line status
// @Summary Update account status
// @Tags credit
// @Accept json
// @Produce json
// @Param cardholder_id path string true "Cardholder ID"
// @Param request body object{status=string} true "ACTIVE or INACTIVE"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cardholder/{cardholder_id}/credit/update-status [put]
func (h *CreditHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	cardholderID := chi.URLParam(r, "cardholder_id")

	var req struct {
		Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, msgInvalidStatus)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, msgInvalidStatus)
		return
	}

	status, err := h.service.UpdateStatus(cardholderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			respondError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, services.ErrInvalidStatus):
			respondError(w, http.StatusUnprocessableEntity, msgInvalidStatus)
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondOK(w, map[string]any{"status": status}, msgSuccess)
}

// ListPayments lists one cardholder's payments
// @Summary Payments for a cardholder
// @Tags payments
// @Produce json
// @Param cardholder_id path string true "Cardholder ID"
// @Success 200 {object} map[string]interface{}
// @Router /cardholder/{cardholder_id}/credit/payment [get]
func (h *CreditHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	cardholderID := chi.URLParam(r, "cardholder_id")

	payments, accountNumber, err := h.service.Payments(cardholderID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	list := make([]map[string]any, 0, len(payments))
	for _, payment := range payments {
		list = append(list, map[string]any{
			"cardholder_id":                payment.CardholderID,
			"account_number":               accountNumber,
			"credit_source_account_number": creditSourceAccountNumber,
			"amount":                       payment.Amount,
			"pay_id":                       payment.PayID,
			"paid_at":                      payment.PaidAt,
			"repaid_at":                    nil,
			"review_date":                  reviewDate,
			"settled":                      payment.Settled,
		})
	}

	respondOK(w, map[string]any{"has_more": false, "payments": list}, msgFetched)
}

// ListAllPayments lists every payment on record
// @Summary All payments
// @Tags payments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /credit/payment [get]
func (h *CreditHandler) ListAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.AllPayments()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	list := make([]map[string]any, 0, len(payments))
	for _, payment := range payments {
		list = append(list, map[string]any{
			"cardholder_id": payment.CardholderID,
			"amount":        payment.Amount,
			"pay_id":        payment.PayID,
			"paid_at":       payment.PaidAt,
			"settled":       payment.Settled,
		})
	}

	respondOK(w, map[string]any{"has_more": false, "payments": list}, msgFetched)
}

// SimulatePayment draws down a cardholder's credit balance
// @Summary Simulate a payment
// @Description Test-harness draw-down; enforces sufficient credit
// @Tags payments
// @Accept json
// @Produce json
// @Param request body object{cardholder_id=string,amount=string} true "Payment"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/debug/simulate-payment [post]
func (h *CreditHandler) SimulatePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CardholderID string `json:"cardholder_id"`
		Amount       any    `json:"amount"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, msgInvalidAmount)
		return
	}

	balance, err := h.service.SimulatePayment(req.CardholderID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrInvalidAmount):
			respondError(w, http.StatusUnprocessableEntity, msgInvalidAmount)
		case errors.Is(err, services.ErrInsufficientCredit):
			respondError(w, http.StatusBadRequest, msgInsufficientCredit)
		default:
			log.Printf("[PAYMENT] simulate failed for %s: %v", req.CardholderID, err)
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondOK(w, map[string]any{"new_balance": balance}, msgPaymentDone)
}

func creditList(logs []models.CreditLog) []map[string]any {
	list := make([]map[string]any, 0, len(logs))
	for _, entry := range logs {
		list = append(list, map[string]any{
			"cardholder_id": entry.CardholderID,
			"credit_amount": entry.CreditAmount,
			"type":          entry.Type,
			"adjusted_at":   entry.AdjustedAt,
		})
	}
	return list
}
