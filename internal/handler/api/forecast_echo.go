package api

import (
	models "CryptoProphet/internal/domain/models"
	"CryptoProphet/internal/usecase"
	xhttp "CryptoProphet/pkg/http"
	xlogger "CryptoProphet/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ForecastEchoHandler exposes the forecast pipeline as a pull-style query
// API.
type ForecastEchoHandler struct {
	logger   *xlogger.Logger
	pipeline *usecase.Pipeline
}

func NewForecastEchoHandler(logger *xlogger.Logger, pipeline *usecase.Pipeline) *ForecastEchoHandler {
	return &ForecastEchoHandler{logger: logger, pipeline: pipeline}
}

func (h *ForecastEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/:symbol", h.Forecast)
}

// Root handles the zone apex with a usage hint.
func (h *ForecastEchoHandler) Root(c echo.Context) error {
	return xhttp.BadRequestResponse(c, "Please specify the ticker symbol as the path (e.g. /btcusd)")
}

// Forecast runs the full pipeline for the requested symbol and returns the
// narrative plus statistics.
func (h *ForecastEchoHandler) Forecast(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.pipeline.ForecastForSymbol(c.Request().Context(), req.Symbol)
	if err != nil {
		h.logger.Error("forecast pipeline error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

// toAppError maps pipeline domain errors onto HTTP statuses. Domain error
// messages are safe to surface verbatim; unclassified failures keep their
// generic message.
func toAppError(err error) *xhttp.AppError {
	de, ok := models.AsDomain(err)
	if !ok {
		return xhttp.InternalError("failed to run your request")
	}
	switch de.Kind {
	case models.ErrDataFormat:
		return xhttp.BadGatewayError(de.Message)
	case models.ErrForecastUnavailable:
		return xhttp.BadGatewayError(de.Message)
	case models.ErrStatistics:
		return xhttp.UnprocessableError(de.Message)
	default:
		return xhttp.InternalError(de.Message)
	}
}
