package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/felipecasali/iphoneshopping-sub000/internal/adapter/http/handlers"
)

const (
	PathEvaluations = "/evaluations"
	PathReports     = "/reports"
)

func addValuationRoutes(rg *gin.RouterGroup, evaluationHandler *handlers.EvaluationHandler, reportHandler *handlers.ReportHandler) {
	evaluations := rg.Group(PathEvaluations)
	{
		evaluations.POST("", evaluationHandler.CreateEvaluation)
		evaluations.GET("/:id", evaluationHandler.GetEvaluation)
	}

	reports := rg.Group(PathReports)
	{
		reports.POST("/estimate", reportHandler.EstimateForReport)
	}
}
