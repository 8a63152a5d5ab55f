package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// tokenExpirySeconds matches the provider contract: access tokens live for
// five days.
const tokenExpirySeconds = 432000

// TokenHandler mocks the provider's token refresh endpoint. Nothing else in
// the service consumes the issued tokens; no endpoint is gated on them.
type TokenHandler struct{}

func NewTokenHandler() *TokenHandler {
	return &TokenHandler{}
}

// RefreshToken issues a fresh token pair
// @Summary Refresh an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{refreshtoken=string} true "Refresh token"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /v3/refreshtoken [post]
func (h *TokenHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshtoken"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	json.NewDecoder(r.Body).Decode(&req)

	if req.RefreshToken == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "پارامتر refreshtoken الزامی است.",
			"errors": map[string]any{
				"refreshtoken": []string{"The refreshtoken field is required."},
			},
		})
		return
	}

	accessToken, err := h.generateAccessToken()
	if err != nil {
		log.Printf("[TOKEN] failed to sign access token: %v", err)
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"token_type":    "Bearer",
		"expires_in":    tokenExpirySeconds,
		"access_token":  accessToken,
		"refresh_token": generateRandomToken(64),
	})
}

func (h *TokenHandler) generateAccessToken() (string, error) {
	secret := viper.GetString("jwt.secret_key")
	if secret == "" {
		secret = "creditmock-dev-secret"
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenExpirySeconds * time.Second).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func generateRandomToken(length int) string {
	buf := make([]byte, length)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
