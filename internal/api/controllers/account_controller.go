package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripjournal/internal/models/request_models"
	"tripjournal/internal/models/response_models"
	"tripjournal/internal/services"
	"tripjournal/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account and return a JWT token
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Username, email, password"
// @Success 201 {object} response_models.AccountLoginResponse
// @Router /users/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response_models.AccountLoginResponse{Token: token})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and return a JWT token
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Username and password"
// @Success 200 {object} response_models.AccountLoginResponse
// @Router /users/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.AccountLoginResponse{Token: token})
}

func (a *AccountController) GetUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	account, err := a.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "User fetched successfully")
}

func (a *AccountController) ListUsers(c *gin.Context) {
	// Unparseable values become 0 so the service rejects them.
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 0
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		pageSize = 0
	}

	accounts, err := a.accountService.ListAccounts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Users fetched successfully")
}

func (a *AccountController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	if err := a.accountService.DeleteAccount(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}
