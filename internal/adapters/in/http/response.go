package http

import (
	"errors"
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/driver"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Messages returned to the back-office client.
const (
	MsgDriverMissing  = "Առաքիչը բացակայում է"
	MsgDriverBusy     = "Առաքիչը Զբաղված է"
	MsgParamsMissing  = "Պարամետրերը բացակայում են"
	MsgOrderUpdated   = "Պատվերը հաջողությամբ թարմացված է"
	MsgOrderDeleted   = "Ապրանքը հեռացված է"
	MsgOrderNotExists = "Ապրանքը չի գտնվել"
	MsgOrderNotFound  = "Order wasn't found"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}

// softFail reports a failure with HTTP 200, which the client treats as a
// business error.
func softFail(c echo.Context, err error) error {
	return fail(c, http.StatusOK, err.Error())
}

// statusFor maps an application error to an HTTP status for the endpoints
// without a dedicated mapping.
func statusFor(err error) int {
	switch {
	case isValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusBadRequest
	case errors.Is(err, driver.ErrDriverIsBusy), errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	return fail(c, statusFor(err), err.Error())
}

func isValidation(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// createOrderError applies the order creation contract: a missing or busy
// driver and invalid input are client errors, everything else is soft.
// Busy is checked first because ErrDriverIsBusy may wrap a ConflictError.
func createOrderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrDriverNotFound):
		return fail(c, http.StatusBadRequest, MsgDriverMissing)
	case errors.Is(err, driver.ErrDriverIsBusy):
		return fail(c, http.StatusBadRequest, MsgDriverBusy)
	case errors.Is(err, errs.ErrValueIsRequired):
		return fail(c, http.StatusBadRequest, MsgParamsMissing)
	case isValidation(err):
		return fail(c, http.StatusBadRequest, err.Error())
	default:
		return softFail(c, err)
	}
}
