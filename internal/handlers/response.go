package handlers

import (
	"encoding/json"
	"net/http"
)

// User-visible messages match the provider API this service mocks, so they
// are Persian on the envelope level. Batch item errors stay English per the
// batch result contract.
const (
	msgSuccess            = "عملیات با موفقیت انجام شد."
	msgFetched            = "اطلاعات با موفقیت دریافت شد."
	msgAlreadyRegistered  = "کاربر قبلا ثبت شده است"
	msgUserNotFound       = "کاربر یافت نشد"
	msgNotFound           = "یافت نشد"
	msgInvalidAmount      = "مبلغ نامعتبر است"
	msgInvalidType        = "نوع عملیات نامعتبر است (CREDIT/DEBIT)"
	msgInvalidStatus      = "وضعیت نامعتبر است (ACTIVE/INACTIVE)"
	msgInsufficientCredit = "اعتبار کافی نیست"
	msgInternalError      = "خطای داخلی"
	msgPaymentDone        = "پرداخت تستی انجام شد"
)

// respondOK writes the success envelope: {"message": ..., "data": ...}.
func respondOK(w http.ResponseWriter, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"message": message,
		"data":    data,
	})
}

// respondError writes the error envelope: {"message": ...}.
func respondError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"message": message,
	})
}
