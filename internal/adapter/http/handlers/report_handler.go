package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/felipecasali/iphoneshopping-sub000/internal/adapter/http/dto/request"
	response "github.com/felipecasali/iphoneshopping-sub000/internal/adapter/http/dto/response"
	"github.com/felipecasali/iphoneshopping-sub000/internal/usecase"
	"github.com/felipecasali/iphoneshopping-sub000/pkg"
)

// ReportHandler serves the technical-report price, computed with the
// report-specific formula rather than the market calculator.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// EstimateForReport returns the stateless report-path estimate.
//
// @Summary      Report price estimate
// @Description  Prices a device with the technical-report formula (substring base table, report coefficients).
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EvaluationRequest  true  "condition questionnaire"
// @Success      200      {object}  response.ReportEstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /reports/estimate [post]
func (h *ReportHandler) EstimateForReport(c *gin.Context) {
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

	quote, err := h.usecase.EstimateForReport(c.Request.Context(), input)
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReportQuote(quote))
}
