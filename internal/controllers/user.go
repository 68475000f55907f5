package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"procurement-api/internal/dto"
	"procurement-api/internal/services"
	"procurement-api/pkg/api"
	apperrors "procurement-api/pkg/errors"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	if logger == nil {
		logger = zap.New(zapcore.NewNopCore())
	}
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

func (c *UserController) GetUsers(ctx echo.Context) error {
	page, extra, err := listParams(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	q := services.ListUsersQuery{
		Username: ctx.QueryParam("username"),
		Email:    ctx.QueryParam("email"),
		Role:     ctx.QueryParam("role"),
		Extra:    extra,
		Page:     page,
	}
	res, err := c.userService.ListUsers(ctx.Request().Context(), q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Users retrieved", res, page)
}

func (c *UserController) FindUser(ctx echo.Context) error {
	res, err := c.userService.GetUser(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "User found", res)
}

func (c *UserController) FindUserByUsername(ctx echo.Context) error {
	res, err := c.userService.GetUserByUsername(ctx.Request().Context(), ctx.Param("username"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "User found", res)
}

func (c *UserController) CreateUser(ctx echo.Context) error {
	var d dto.CreateUserDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.userService.CreateUser(ctx.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "User created", res)
}

func (c *UserController) UpdateUser(ctx echo.Context) error {
	var d dto.UpdateUserDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.userService.UpdateUser(ctx.Request().Context(), ctx.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "User updated", res)
}

func (c *UserController) DeleteUser(ctx echo.Context) error {
	deleted, err := c.userService.DeleteUser(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if !deleted {
		return api.ErrorResponse(ctx, apperrors.ErrNotFound, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
