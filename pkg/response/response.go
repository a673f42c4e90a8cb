package response

import (
	"errors"
	"net/http"
	"strings"

	apperrors "estatehub/pkg/errors"
	"estatehub/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PropertyPage is the wire shape of the list endpoint. Total counts every
// record matching the filter before pagination is applied.
type PropertyPage struct {
	Properties  interface{} `json:"properties"`
	Total       int64       `json:"total"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

func NewPropertyPage(properties interface{}, total int64, page, limit int) PropertyPage {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return PropertyPage{
		Properties:  properties,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

func Paginated(c echo.Context, properties interface{}, total int64, page, limit int) error {
	return c.JSON(http.StatusOK, NewPropertyPage(properties, total, page, limit))
}

// Error maps an error to the documented wire contract: {"error": message}
// with the status carried by the error. Internal causes are logged, never
// exposed.
func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": validationMessage(validationErr),
		})
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("internal error: %v (cause: %v)", appErr.Message, appErr.Err)
			return c.JSON(appErr.Status, map[string]string{"error": "Internal server error"})
		}
		return c.JSON(appErr.Status, map[string]string{"error": appErr.Message})
	}

	logger.Error("unhandled error: %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

func validationMessage(validationErr validator.ValidationErrors) string {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			return field + " is required"
		case "gte", "min":
			return field + " must be at least " + err.Param()
		case "oneof":
			return field + " must be one of: " + err.Param()
		case "url":
			return field + " must be a valid URL"
		default:
			return field + " is invalid"
		}
	}
	return "Invalid input data"
}
