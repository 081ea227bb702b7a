package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/otp"
)

type OTPHandler struct {
	issuer *otp.Issuer
}

func NewOTPHandler(issuer *otp.Issuer) *OTPHandler {
	return &OTPHandler{issuer: issuer}
}

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

func (h *OTPHandler) Send(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "email_required", "Email is required.")
		return
	}

	if err := h.issuer.Send(c.Request.Context(), req.Email); err != nil {
		if httperr.IsBusiness(err, "otp_delivery_failed") {
			// The stored code is still valid; only delivery failed.
			httperr.Internal(c, "otp_delivery_failed", "Failed to send OTP email.")
			return
		}
		httperr.Internal(c, "otp_store_failed", "Failed to issue OTP.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully to your email"})
}

func (h *OTPHandler) Verify(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "email_and_otp_required", "Email and OTP required.")
		return
	}

	if err := h.issuer.Verify(c.Request.Context(), req.Email, req.OTP); err != nil {
		if httperr.IsBusiness(err, "invalid_otp") {
			httperr.Unauthorized(c, "invalid_otp", "Invalid OTP.")
			return
		}
		httperr.Internal(c, "otp_store_failed", "Failed to verify OTP.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP Verified"})
}
