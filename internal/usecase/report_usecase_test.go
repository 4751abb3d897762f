package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
)

func TestReportUseCase_EstimateForReport(t *testing.T) {
	uc := NewReportUseCase(nil)

	t.Run("success", func(t *testing.T) {
		quote, err := uc.EstimateForReport(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Amount == 0 {
			t.Fatalf("expected nonzero report price")
		}
		if quote.MatchedModel != "iphone 13" {
			t.Fatalf("unexpected match: %q", quote.MatchedModel)
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		input := validInput()
		input.Model = "Pixel 8"
		_, err := uc.EstimateForReport(context.Background(), input)
		if !errors.Is(err, entities.ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})
}
