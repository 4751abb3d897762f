package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/felipecasali/iphoneshopping-sub000/internal/adapter/http/handlers/mocks"
	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
	"github.com/felipecasali/iphoneshopping-sub000/internal/usecase"
)

const validPayload = `{
	"type": "iphone",
	"model": "iPhone 13",
	"storage": 128,
	"condition": "excellent",
	"icloudFree": true,
	"imeiClean": true,
	"batteryHealthPercent": 90,
	"screenCondition": "perfect",
	"bodyCondition": "perfect"
}`

func postEvaluation(t *testing.T, h *EvaluationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST("/v1/evaluations", h.CreateEvaluation)

	req := httptest.NewRequest(http.MethodPost, "/v1/evaluations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEvaluationHandler_CreateEvaluation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		w := postEvaluation(t, h, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown condition string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		w := postEvaluation(t, h, `{
			"type": "iphone", "model": "iPhone 13", "storage": 128,
			"condition": "pristine",
			"icloudFree": true, "imeiClean": true,
			"screenCondition": "perfect", "bodyCondition": "perfect"
		}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("device not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		uc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(entities.Evaluation{}, entities.ErrDeviceNotFound)

		w := postEvaluation(t, h, validPayload)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != "DEVICE_NOT_FOUND" {
			t.Fatalf("unexpected error code: %q", body["code"])
		}
	})

	t.Run("invalid storage maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		uc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(entities.Evaluation{}, entities.ErrInvalidStorage)

		w := postEvaluation(t, h, validPayload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		uc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(entities.Evaluation{}, errors.New("db"))

		w := postEvaluation(t, h, validPayload)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		now := time.Now().UTC()
		uc.EXPECT().Evaluate(gomock.Any(), gomock.AssignableToTypeOf(entities.ValuationInput{})).DoAndReturn(
			func(_ context.Context, input entities.ValuationInput) (entities.Evaluation, error) {
				if input.DeviceType != entities.DeviceTypePhone || input.Model != "iPhone 13" {
					t.Fatalf("unexpected input: %+v", input)
				}
				if input.Condition != entities.ConditionExcellent {
					t.Fatalf("unexpected condition: %s", input.Condition)
				}
				return entities.Evaluation{
					ID:     "eval-1",
					Amount: 3569,
					Range:  entities.PriceRange{Min: 3212, Max: 3926},
					Device: entities.DeviceCatalogEntry{
						Type:      entities.DeviceTypePhone,
						Model:     "iPhone 13",
						BasePrice: 4199,
					},
					CreatedAt: now,
					ExpiresAt: now.Add(90 * 24 * time.Hour),
				}, nil
			},
		)

		w := postEvaluation(t, h, validPayload)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			ID             string `json:"id"`
			EstimatedPrice int64  `json:"estimatedPrice"`
			PriceRange     struct {
				Min int64 `json:"min"`
				Max int64 `json:"max"`
			} `json:"priceRange"`
			Device struct {
				Model     string `json:"model"`
				Type      string `json:"type"`
				BasePrice int64  `json:"basePrice"`
			} `json:"device"`
			Blocked bool `json:"blocked"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "eval-1" || body.EstimatedPrice != 3569 || body.Blocked {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.PriceRange.Min != 3212 || body.PriceRange.Max != 3926 {
			t.Fatalf("unexpected range: %+v", body.PriceRange)
		}
		if body.Device.Model != "iPhone 13" || body.Device.Type != "phone" || body.Device.BasePrice != 4199 {
			t.Fatalf("unexpected device: %+v", body.Device)
		}
	})

	t.Run("blocked device returns 201 with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		uc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(entities.Evaluation{
			ID:          "eval-2",
			Amount:      0,
			Blocked:     true,
			BlockReason: "icloud_locked",
		}, nil)

		w := postEvaluation(t, h, validPayload)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["blocked"] != true || body["blockReason"] != "icloud_locked" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestEvaluationHandler_GetEvaluation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	getEvaluation := func(t *testing.T, h *EvaluationHandler, id string) *httptest.ResponseRecorder {
		t.Helper()
		r := gin.New()
		r.GET("/v1/evaluations/:id", h.GetEvaluation)

		req := httptest.NewRequest(http.MethodGet, "/v1/evaluations/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Evaluation{}, usecase.ErrEvaluationNotFound)

		w := getEvaluation(t, h, "missing")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "eval-1").Return(entities.Evaluation{ID: "eval-1", Amount: 3569}, nil)

		w := getEvaluation(t, h, "eval-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
