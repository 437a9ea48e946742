package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
)

func RaiseError(context *fiber.Ctx, status int, message string, data string) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaiseUnauthorizedError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusUnauthorized, "authorization required", data)
}

func RaisePermissionsError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusForbidden, "lack of permissions", data)
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}

func RaiseConflictError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusConflict, "conflict", data)
}

// Raise maps a typed service error onto the JSON error envelope.
func Raise(context *fiber.Ctx, err error) error {
	var (
		authErr       *AuthenticationError
		validationErr *ValidationError
		filterErr     *InvalidFilterError
		notFoundErr   *NotFoundError
		permissionErr *PermissionError
		conflictErr   *ConflictError
	)
	switch {
	case stderrors.As(err, &authErr):
		return RaiseUnauthorizedError(context, authErr.Message)
	case stderrors.As(err, &validationErr):
		return RaiseBadRequestError(context, validationErr.Message)
	case stderrors.As(err, &filterErr):
		return RaiseBadRequestError(context, filterErr.Message)
	case stderrors.As(err, &notFoundErr):
		return RaiseNotFoundError(context, notFoundErr.Message)
	case stderrors.As(err, &permissionErr):
		return RaisePermissionsError(context, permissionErr.Message)
	case stderrors.As(err, &conflictErr):
		return RaiseConflictError(context, conflictErr.Message)
	default:
		return RaiseInternalServerError(context, err.Error())
	}
}
