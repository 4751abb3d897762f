package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/felipecasali/iphoneshopping-sub000/internal/adapter/http/dto/request"
	response "github.com/felipecasali/iphoneshopping-sub000/internal/adapter/http/dto/response"
	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
	"github.com/felipecasali/iphoneshopping-sub000/internal/usecase"
	"github.com/felipecasali/iphoneshopping-sub000/pkg"
)

var errInvalidEvaluationPayload = pkg.NewDomainErrorSimple("INVALID_EVALUATION_INPUT", "Invalid evaluation payload", http.StatusBadRequest)

// EvaluationHandler handles HTTP requests for device valuations.

type EvaluationHandler struct {
	usecase usecase.IEvaluationUseCase
}

func NewEvaluationHandler(uc usecase.IEvaluationUseCase) *EvaluationHandler {
	return &EvaluationHandler{usecase: uc}
}

// CreateEvaluation prices a condition questionnaire and stores the
// evaluation record.
//
// A compliance-blocked device is not an error: the response carries
// estimatedPrice 0, blocked=true and the violated precondition.
//
// @Summary      Evaluate a device
// @Description  Computes the market estimate for a used device questionnaire and persists the evaluation for 90 days.
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EvaluationRequest  true  "condition questionnaire"
// @Success      201      {object}  response.EvaluationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /evaluations [post]
func (h *EvaluationHandler) CreateEvaluation(c *gin.Context) {
	var payload request.EvaluationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEvaluationPayload.HTTPStatus, errInvalidEvaluationPayload.ToHTTPError())
		return
	}

	input, err := payload.ToValuationInput()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_EVALUATION_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	evaluation, err := h.usecase.Evaluate(c.Request.Context(), input)
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEvaluation(evaluation))
}

// GetEvaluation returns a stored evaluation record.
//
// @Summary      Fetch an evaluation
// @Tags         evaluations
// @Produce      json
// @Param        id   path      string  true  "evaluation id"
// @Success      200  {object}  response.EvaluationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /evaluations/{id} [get]
func (h *EvaluationHandler) GetEvaluation(c *gin.Context) {
	evaluation, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvaluation(evaluation))
}

func mapEvaluationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrDeviceNotFound):
		return pkg.NewDomainError("DEVICE_NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStorage):
		return pkg.NewDomainError("INVALID_STORAGE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEvaluationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEvaluationNotFound):
		return pkg.NewDomainErrorSimple("EVALUATION_NOT_FOUND", "Evaluation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
