package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/felipecasali/iphoneshopping-sub000/internal/adapter/http/handlers/mocks"
	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/pricing"
)

func postReport(t *testing.T, h *ReportHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST("/v1/reports/estimate", h.EstimateForReport)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/estimate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReportHandler_EstimateForReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		w := postReport(t, h, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown model maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().EstimateForReport(gomock.Any(), gomock.Any()).Return(pricing.ReportQuote{}, entities.ErrDeviceNotFound)

		w := postReport(t, h, validPayload)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().EstimateForReport(gomock.Any(), gomock.Any()).Return(pricing.ReportQuote{
			Amount:       3509,
			Range:        entities.PriceRange{Min: 3158, Max: 3860},
			MatchedModel: "iphone 13",
		}, nil)

		w := postReport(t, h, validPayload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			ReportPrice  int64  `json:"reportPrice"`
			MatchedModel string `json:"matchedModel"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ReportPrice != 3509 || body.MatchedModel != "iphone 13" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
